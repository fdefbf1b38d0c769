package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
)

type revisionRepository struct {
	db *sql.DB
}

// NewRevisionRepository creates a new RevisionRepository implementation
func NewRevisionRepository(db *sql.DB) repository.RevisionRepository {
	return &revisionRepository{db: db}
}

var joinedColumns = []string{
	"r.id", "r.problem_id", "r.revision_number", "r.scheduled_date",
	"r.completed_date", "r.rating", "r.is_completed", "r.created_at",
	"p.name", "p.category", "p.question", "p.flashcard_title", "p.flashcard_code",
}

func (r *revisionRepository) Get(ctx context.Context, id int64) (*models.Revision, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("getting revision: id=%d", id)

	var rev models.Revision
	var completed models.Date
	var rating sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
SELECT id, problem_id, revision_number, scheduled_date, completed_date, rating, is_completed, created_at
FROM revisions
WHERE id = ?
`, id).Scan(&rev.ID, &rev.ProblemID, &rev.RevisionNumber, &rev.ScheduledDate, &completed, &rating, &rev.IsCompleted, &rev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("revision not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get revision: %v", err)
		return nil, err
	}
	if !completed.IsZero() {
		rev.CompletedDate = &completed
	}
	if rating.Valid {
		v := int(rating.Int64)
		rev.Rating = &v
	}
	return &rev, nil
}

func (r *revisionRepository) Due(ctx context.Context, today models.Date) ([]models.RevisionWithProblem, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("fetching due revisions: today=%s", today)

	query := sqlBuilder.Select(joinedColumns...).
		From("revisions r").
		Join("problems p ON p.id = r.problem_id").
		Where(squirrel.Eq{"r.is_completed": 0}).
		Where(squirrel.LtOrEq{"r.scheduled_date": today}).
		Where(squirrel.Eq{"p.is_archived": 0}).
		OrderBy("r.scheduled_date ASC", "r.id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	revs, err := r.queryJoined(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query due revisions: %v", err)
		return nil, err
	}
	log.Debug("found %d due revisions", len(revs))
	return revs, nil
}

func (r *revisionRepository) ForMonth(ctx context.Context, month, year int) ([]models.RevisionWithProblem, error) {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("fetching revisions for month=%d year=%d", month, year)

	query := sqlBuilder.Select(joinedColumns...).
		From("revisions r").
		Join("problems p ON p.id = r.problem_id").
		Where(squirrel.Expr("CAST(strftime('%m', r.scheduled_date) AS INTEGER) = ?", month)).
		Where(squirrel.Expr("CAST(strftime('%Y', r.scheduled_date) AS INTEGER) = ?", year)).
		Where(squirrel.Eq{"p.is_archived": 0}).
		OrderBy("r.scheduled_date ASC", "r.id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	revs, err := r.queryJoined(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query month revisions: %v", err)
		return nil, err
	}
	log.Debug("found %d revisions in %d/%d", len(revs), month, year)
	return revs, nil
}

func (r *revisionRepository) queryJoined(ctx context.Context, sqlStr string, args ...any) ([]models.RevisionWithProblem, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revs []models.RevisionWithProblem
	for rows.Next() {
		var rev models.RevisionWithProblem
		var completed models.Date
		var rating sql.NullInt64
		if err := rows.Scan(
			&rev.ID, &rev.ProblemID, &rev.RevisionNumber, &rev.ScheduledDate,
			&completed, &rating, &rev.IsCompleted, &rev.CreatedAt,
			&rev.ProblemName, &rev.Category, &rev.Question, &rev.FlashcardTitle, &rev.FlashcardCode,
		); err != nil {
			return nil, err
		}
		if !completed.IsZero() {
			rev.CompletedDate = &completed
		}
		if rating.Valid {
			v := int(rating.Int64)
			rev.Rating = &v
		}
		revs = append(revs, rev)
	}
	return revs, rows.Err()
}

func (r *revisionRepository) Complete(ctx context.Context, id int64, completedOn models.Date, rating int, next models.Revision) error {
	log := logger.FromContext(ctx).WithPrefix("revision_repo")
	log.Debug("completing revision: id=%d, rating=%d", id, rating)

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Guarded update: only an incomplete revision can be completed, so a
		// concurrent completion of the same id affects zero rows and never
		// schedules a second successor.
		res, err := tx.ExecContext(ctx, `
UPDATE revisions
SET is_completed = 1, completed_date = ?, rating = ?
WHERE id = ? AND is_completed = 0
`, completedOn, rating, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			var exists bool
			err := tx.QueryRowContext(ctx, `SELECT 1 FROM revisions WHERE id = ?`, id).Scan(&exists)
			if errors.Is(err, sql.ErrNoRows) {
				return repository.ErrNotFound
			}
			if err != nil {
				return err
			}
			return repository.ErrAlreadyCompleted
		}

		_, err = tx.ExecContext(ctx, `
INSERT INTO revisions (problem_id, revision_number, scheduled_date, is_completed)
VALUES (?, ?, ?, 0)
`, next.ProblemID, next.RevisionNumber, next.ScheduledDate)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrAlreadyCompleted) {
			log.Debug("completion rejected: id=%d (%v)", id, err)
		} else {
			log.Error("failed to complete revision: %v", err)
		}
		return err
	}
	log.Debug("revision %d completed, successor %d scheduled for %s", id, next.RevisionNumber, next.ScheduledDate)
	return nil
}
