package services

import (
	"context"
	stderrors "errors"

	"github.com/algorecall/algorecall/internal/errors"
	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
	"github.com/algorecall/algorecall/internal/scheduler"
)

// RevisionService handles the revision lifecycle and the read-time queries
// derived from it.
type RevisionService interface {
	Due(ctx context.Context, today models.Date) ([]models.RevisionWithProblem, error)
	Complete(ctx context.Context, id int64, rating int, today models.Date) (*models.CompletionResult, error)
	Calendar(ctx context.Context, month, year int, today models.Date) (map[string][]models.RevisionWithProblem, error)
}

type revisionService struct {
	revisions repository.RevisionRepository
}

// NewRevisionService creates a new RevisionService
func NewRevisionService(revisions repository.RevisionRepository) RevisionService {
	return &revisionService{revisions: revisions}
}

func (s *revisionService) Due(ctx context.Context, today models.Date) ([]models.RevisionWithProblem, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching due revisions for %s", today)

	revs, err := s.revisions.Due(ctx, today)
	if err != nil {
		log.Error("failed to fetch due revisions: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// A revision due exactly today is in the result set but not overdue.
	for i := range revs {
		revs[i] = scheduler.Annotate(revs[i], today)
	}
	return revs, nil
}

func (s *revisionService) Complete(ctx context.Context, id int64, rating int, today models.Date) (*models.CompletionResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("completing revision: id=%d, rating=%d", id, rating)

	if !scheduler.Rating(rating).Valid() {
		return nil, errors.NewValidationError("rating", "must be 1, 2 or 3")
	}

	rev, err := s.revisions.Get(ctx, id)
	if err != nil {
		log.Error("failed to load revision: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if rev == nil {
		return nil, errors.NewNotFoundError("revision", id)
	}
	if rev.IsCompleted {
		return nil, errors.NewConflictError("revision already completed")
	}

	interval, err := scheduler.NextInterval(scheduler.Rating(rating), rev.RevisionNumber)
	if err != nil {
		return nil, errors.NewValidationError("rating", err.Error())
	}
	nextDate := today.AddDays(interval)

	next := models.Revision{
		ProblemID:      rev.ProblemID,
		RevisionNumber: rev.RevisionNumber + 1,
		ScheduledDate:  nextDate,
	}

	if err := s.revisions.Complete(ctx, id, today, rating, next); err != nil {
		switch {
		case stderrors.Is(err, repository.ErrNotFound):
			return nil, errors.NewNotFoundError("revision", id)
		case stderrors.Is(err, repository.ErrAlreadyCompleted):
			// Lost a race with a concurrent completion of the same id.
			return nil, errors.NewConflictError("revision already completed")
		default:
			log.Error("failed to complete revision: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}

	log.Info("revision %d completed with rating %d, next due %s (+%d days)", id, rating, nextDate, interval)
	return &models.CompletionResult{NextDate: nextDate, Interval: interval}, nil
}

func (s *revisionService) Calendar(ctx context.Context, month, year int, today models.Date) (map[string][]models.RevisionWithProblem, error) {
	log := logger.FromContext(ctx)
	log.Debug("building calendar for %d/%d", month, year)

	if month < 1 || month > 12 {
		return nil, errors.NewValidationError("month", "must be between 1 and 12")
	}
	if year <= 0 {
		return nil, errors.NewValidationError("year", "must be positive")
	}

	revs, err := s.revisions.ForMonth(ctx, month, year)
	if err != nil {
		log.Error("failed to fetch revisions for month: %v", err)
		return nil, errors.NewInternalError(err)
	}

	for i := range revs {
		revs[i] = scheduler.Annotate(revs[i], today)
	}
	return scheduler.GroupByDate(revs), nil
}
