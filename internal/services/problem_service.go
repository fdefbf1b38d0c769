package services

import (
	"context"
	"strings"

	"github.com/algorecall/algorecall/internal/errors"
	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
	"github.com/algorecall/algorecall/internal/scheduler"
)

// ProblemService handles problem lifecycle and detail queries.
type ProblemService interface {
	Create(ctx context.Context, input models.NewProblem, today models.Date) (*models.Problem, error)
	List(ctx context.Context) ([]models.Problem, error)
	Detail(ctx context.Context, id int64) (*models.ProblemDetail, error)
	Archive(ctx context.Context, id int64) error
}

type problemService struct {
	problems repository.ProblemRepository
}

// NewProblemService creates a new ProblemService
func NewProblemService(problems repository.ProblemRepository) ProblemService {
	return &problemService{problems: problems}
}

func (s *problemService) Create(ctx context.Context, input models.NewProblem, today models.Date) (*models.Problem, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating problem: name=%s", input.Name)

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, errors.NewValidationError("category", "cannot be empty")
	}

	problem, err := s.problems.Create(ctx, input, scheduler.FirstRevisionDate(today))
	if err != nil {
		log.Error("failed to create problem: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("problem created: id=%d, name=%s", problem.ID, problem.Name)
	return problem, nil
}

func (s *problemService) List(ctx context.Context) ([]models.Problem, error) {
	problems, err := s.problems.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return problems, nil
}

// Detail ignores the archived flag on purpose: history stays viewable after
// a problem is archived.
func (s *problemService) Detail(ctx context.Context, id int64) (*models.ProblemDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching problem detail: id=%d", id)

	problem, err := s.problems.Get(ctx, id)
	if err != nil {
		log.Error("failed to get problem: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if problem == nil {
		return nil, errors.NewNotFoundError("problem", id)
	}

	next, err := s.problems.NextScheduledDate(ctx, id)
	if err != nil {
		log.Error("failed to get next revision date: %v", err)
		return nil, errors.NewInternalError(err)
	}
	problem.NextRevisionDate = next

	history, err := s.problems.History(ctx, id)
	if err != nil {
		log.Error("failed to get revision history: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &models.ProblemDetail{
		Problem:   *problem,
		Revisions: history,
	}, nil
}

func (s *problemService) Archive(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("archiving problem: id=%d", id)

	if err := s.problems.Archive(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return errors.NewNotFoundError("problem", id)
		}
		log.Error("failed to archive problem: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("problem archived: id=%d", id)
	return nil
}
