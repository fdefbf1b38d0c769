package services

import (
	"context"

	"github.com/algorecall/algorecall/internal/errors"
	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
	"github.com/algorecall/algorecall/internal/scheduler"
)

// StatsService composes the analytics view: counts, category breakdown and
// the current completion streak.
type StatsService interface {
	Analytics(ctx context.Context, today models.Date) (*models.Analytics, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Analytics(ctx context.Context, today models.Date) (*models.Analytics, error) {
	log := logger.FromContext(ctx)
	log.Debug("building analytics")

	totalProblems, err := s.stats.CountActiveProblems(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	totalRevisions, err := s.stats.CountCompletedRevisions(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	breakdown, err := s.stats.CategoryBreakdown(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if breakdown == nil {
		breakdown = []models.CategoryStat{}
	}

	dates, err := s.stats.CompletionDates(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	return &models.Analytics{
		TotalProblems:     totalProblems,
		TotalRevisions:    totalRevisions,
		CurrentStreak:     scheduler.Streak(dates, today),
		CategoryBreakdown: breakdown,
	}, nil
}
