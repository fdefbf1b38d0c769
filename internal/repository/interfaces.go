package repository

import (
	"context"
	"errors"

	"github.com/algorecall/algorecall/internal/models"
)

// Sentinel errors returned by implementations so services can map them to
// API-level errors without string matching.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyCompleted = errors.New("revision already completed")
)

// ProblemRepository handles problem data access.
type ProblemRepository interface {
	// Create persists the problem together with its first revision in a
	// single transaction; a reader never observes a problem with zero
	// revisions.
	Create(ctx context.Context, input models.NewProblem, firstRevisionDate models.Date) (*models.Problem, error)
	Get(ctx context.Context, id int64) (*models.Problem, error)
	List(ctx context.Context) ([]models.Problem, error)
	History(ctx context.Context, problemID int64) ([]models.RevisionHistoryItem, error)
	NextScheduledDate(ctx context.Context, problemID int64) (*models.Date, error)
	Archive(ctx context.Context, id int64) error
}

// RevisionRepository handles revision data access.
type RevisionRepository interface {
	Get(ctx context.Context, id int64) (*models.Revision, error)
	// Due returns incomplete revisions scheduled on or before today, joined
	// to their non-archived problems.
	Due(ctx context.Context, today models.Date) ([]models.RevisionWithProblem, error)
	// ForMonth returns all revisions scheduled within the given month/year
	// regardless of completion state, excluding archived problems.
	ForMonth(ctx context.Context, month, year int) ([]models.RevisionWithProblem, error)
	// Complete marks the revision done and inserts its successor in one
	// transaction. The update is guarded on is_completed so a concurrent
	// completion of the same revision loses with ErrAlreadyCompleted and
	// never double-schedules.
	Complete(ctx context.Context, id int64, completedOn models.Date, rating int, next models.Revision) error
}

// StatsRepository handles the aggregate queries behind analytics.
type StatsRepository interface {
	CountActiveProblems(ctx context.Context) (int, error)
	CountCompletedRevisions(ctx context.Context) (int, error)
	CategoryBreakdown(ctx context.Context) ([]models.CategoryStat, error)
	// CompletionDates returns the distinct completion dates, most recent
	// first.
	CompletionDates(ctx context.Context) ([]models.Date, error)
}
