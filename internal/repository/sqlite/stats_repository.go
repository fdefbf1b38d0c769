package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountActiveProblems(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problems WHERE is_archived = 0`).Scan(&count)
	if err != nil {
		log.Error("failed to count problems: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CountCompletedRevisions(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revisions WHERE is_completed = 1`).Scan(&count)
	if err != nil {
		log.Error("failed to count completed revisions: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CategoryBreakdown(ctx context.Context) ([]models.CategoryStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching category breakdown")

	query := sqlBuilder.Select("category", "COUNT(*)").
		From("problems").
		Where(squirrel.Eq{"is_archived": 0}).
		GroupBy("category").
		OrderBy("COUNT(*) DESC", "category ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query category breakdown: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Category, &s.Count); err != nil {
			log.Error("failed to scan category stat: %v", err)
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *statsRepository) CompletionDates(ctx context.Context) ([]models.Date, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching distinct completion dates")

	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT completed_date
FROM revisions
WHERE is_completed = 1 AND completed_date IS NOT NULL
ORDER BY completed_date DESC
`)
	if err != nil {
		log.Error("failed to query completion dates: %v", err)
		return nil, err
	}
	defer rows.Close()

	var dates []models.Date
	for rows.Next() {
		var d models.Date
		if err := rows.Scan(&d); err != nil {
			log.Error("failed to scan completion date: %v", err)
			return nil, err
		}
		dates = append(dates, d)
	}
	log.Debug("found %d distinct completion dates", len(dates))
	return dates, rows.Err()
}
