package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
)

type problemRepository struct {
	db *sql.DB
}

// NewProblemRepository creates a new ProblemRepository implementation
func NewProblemRepository(db *sql.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Create(ctx context.Context, input models.NewProblem, firstRevisionDate models.Date) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("creating problem: name=%s, category=%s", input.Name, input.Category)

	var p models.Problem
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO problems (name, link, category, question, flashcard_title, flashcard_code)
VALUES (?, ?, ?, ?, ?, ?)
`, input.Name, input.Link, input.Category, input.Question, input.FlashcardTitle, input.FlashcardCode)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
INSERT INTO revisions (problem_id, revision_number, scheduled_date, is_completed)
VALUES (?, 1, ?, 0)
`, id, firstRevisionDate); err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, `
SELECT id, name, link, category, question, flashcard_title, flashcard_code, is_archived, created_at
FROM problems
WHERE id = ?
`, id)
		return scanProblem(row, &p)
	})
	if err != nil {
		log.Error("failed to create problem: %v", err)
		return nil, err
	}
	log.Debug("problem created: id=%d, first revision due %s", p.ID, firstRevisionDate)
	return &p, nil
}

func (r *problemRepository) Get(ctx context.Context, id int64) (*models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("getting problem: id=%d", id)

	row := r.db.QueryRowContext(ctx, `
SELECT id, name, link, category, question, flashcard_title, flashcard_code, is_archived, created_at
FROM problems
WHERE id = ?
`, id)

	var p models.Problem
	if err := scanProblem(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("problem not found: id=%d", id)
			return nil, nil
		}
		log.Error("failed to get problem: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *problemRepository) List(ctx context.Context) ([]models.Problem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("listing active problems")

	rows, err := r.db.QueryContext(ctx, `
SELECT p.id, p.name, p.link, p.category, p.question, p.flashcard_title, p.flashcard_code, p.is_archived, p.created_at,
       (SELECT MAX(r.scheduled_date) FROM revisions r WHERE r.problem_id = p.id) AS next_revision_date
FROM problems p
WHERE p.is_archived = 0
ORDER BY p.created_at DESC
`)
	if err != nil {
		log.Error("failed to list problems: %v", err)
		return nil, err
	}
	defer rows.Close()

	var problems []models.Problem
	for rows.Next() {
		var p models.Problem
		var next models.Date
		if err := rows.Scan(&p.ID, &p.Name, &p.Link, &p.Category, &p.Question, &p.FlashcardTitle, &p.FlashcardCode, &p.IsArchived, &p.CreatedAt, &next); err != nil {
			log.Error("failed to scan problem row: %v", err)
			return nil, err
		}
		if !next.IsZero() {
			p.NextRevisionDate = &next
		}
		problems = append(problems, p)
	}
	log.Debug("found %d active problems", len(problems))
	return problems, rows.Err()
}

func (r *problemRepository) History(ctx context.Context, problemID int64) ([]models.RevisionHistoryItem, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("fetching revision history: problem_id=%d", problemID)

	rows, err := r.db.QueryContext(ctx, `
SELECT revision_number, completed_date, rating
FROM revisions
WHERE problem_id = ?
ORDER BY revision_number
`, problemID)
	if err != nil {
		log.Error("failed to query revision history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var history []models.RevisionHistoryItem
	for rows.Next() {
		var item models.RevisionHistoryItem
		var completed models.Date
		var rating sql.NullInt64
		if err := rows.Scan(&item.RevisionNumber, &completed, &rating); err != nil {
			log.Error("failed to scan history row: %v", err)
			return nil, err
		}
		if !completed.IsZero() {
			item.CompletedDate = &completed
		}
		if rating.Valid {
			v := int(rating.Int64)
			item.Rating = &v
		}
		history = append(history, item)
	}
	return history, rows.Err()
}

func (r *problemRepository) NextScheduledDate(ctx context.Context, problemID int64) (*models.Date, error) {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")

	var next models.Date
	err := r.db.QueryRowContext(ctx, `
SELECT MAX(scheduled_date) FROM revisions WHERE problem_id = ?
`, problemID).Scan(&next)
	if err != nil {
		log.Error("failed to get next scheduled date: %v", err)
		return nil, err
	}
	if next.IsZero() {
		return nil, nil
	}
	return &next, nil
}

func (r *problemRepository) Archive(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("problem_repo")
	log.Debug("archiving problem: id=%d", id)

	res, err := r.db.ExecContext(ctx, `UPDATE problems SET is_archived = 1 WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to archive problem: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Debug("problem not found: id=%d", id)
		return repository.ErrNotFound
	}
	return nil
}

func scanProblem(row *sql.Row, p *models.Problem) error {
	return row.Scan(&p.ID, &p.Name, &p.Link, &p.Category, &p.Question, &p.FlashcardTitle, &p.FlashcardCode, &p.IsArchived, &p.CreatedAt)
}
