package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/algorecall/algorecall/internal/models"
)

// MockRevisionRepository is a mock implementation of repository.RevisionRepository
type MockRevisionRepository struct {
	mock.Mock
}

func (m *MockRevisionRepository) Get(ctx context.Context, id int64) (*models.Revision, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Revision), args.Error(1)
}

func (m *MockRevisionRepository) Due(ctx context.Context, today models.Date) ([]models.RevisionWithProblem, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevisionWithProblem), args.Error(1)
}

func (m *MockRevisionRepository) ForMonth(ctx context.Context, month, year int) ([]models.RevisionWithProblem, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevisionWithProblem), args.Error(1)
}

func (m *MockRevisionRepository) Complete(ctx context.Context, id int64, completedOn models.Date, rating int, next models.Revision) error {
	args := m.Called(ctx, id, completedOn, rating, next)
	return args.Error(0)
}
