package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/algorecall/algorecall/internal/errors"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
	"github.com/algorecall/algorecall/internal/services"
	"github.com/algorecall/algorecall/internal/testutil/mocks"
)

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestComplete_SchedulesSuccessor(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	today := models.NewDate(2025, 6, 12)
	pending := &models.Revision{
		ID:             7,
		ProblemID:      3,
		RevisionNumber: 2,
		ScheduledDate:  today,
	}

	repo.On("Get", mock.Anything, int64(7)).Return(pending, nil)
	expectedNext := models.Revision{
		ProblemID:      3,
		RevisionNumber: 3,
		ScheduledDate:  today.AddDays(3), // mastered at revision 2 advances to 3 days
	}
	repo.On("Complete", mock.Anything, int64(7), today, 3, expectedNext).Return(nil)

	result, err := svc.Complete(context.Background(), 7, 3, today)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Interval)
	assert.Equal(t, "2025-06-15", result.NextDate.String())

	repo.AssertExpectations(t)
}

func TestComplete_ForgotResetsToOneDay(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	today := models.NewDate(2025, 6, 12)
	pending := &models.Revision{ID: 9, ProblemID: 4, RevisionNumber: 5, ScheduledDate: today}

	repo.On("Get", mock.Anything, int64(9)).Return(pending, nil)
	repo.On("Complete", mock.Anything, int64(9), today, 1, models.Revision{
		ProblemID:      4,
		RevisionNumber: 6,
		ScheduledDate:  today.AddDays(1),
	}).Return(nil)

	result, err := svc.Complete(context.Background(), 9, 1, today)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Interval)

	repo.AssertExpectations(t)
}

func TestComplete_InvalidRating(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	for _, rating := range []int{0, 4, -1} {
		_, err := svc.Complete(context.Background(), 7, rating, models.NewDate(2025, 6, 12))
		requireAppError(t, err, apperrors.ErrCodeValidation)
	}

	// Rejected at the boundary: no lookup, no mutation.
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComplete_NotFound(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	repo.On("Get", mock.Anything, int64(404)).Return(nil, nil)

	_, err := svc.Complete(context.Background(), 404, 3, models.NewDate(2025, 6, 12))
	requireAppError(t, err, apperrors.ErrCodeNotFound)
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	done := &models.Revision{ID: 7, ProblemID: 3, RevisionNumber: 2, IsCompleted: true}
	repo.On("Get", mock.Anything, int64(7)).Return(done, nil)

	_, err := svc.Complete(context.Background(), 7, 3, models.NewDate(2025, 6, 12))
	requireAppError(t, err, apperrors.ErrCodeConflict)

	repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComplete_LosesConcurrentRace(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	today := models.NewDate(2025, 6, 12)
	pending := &models.Revision{ID: 7, ProblemID: 3, RevisionNumber: 1, ScheduledDate: today}

	repo.On("Get", mock.Anything, int64(7)).Return(pending, nil)
	repo.On("Complete", mock.Anything, int64(7), today, 3, mock.Anything).Return(repository.ErrAlreadyCompleted)

	_, err := svc.Complete(context.Background(), 7, 3, today)
	requireAppError(t, err, apperrors.ErrCodeConflict)
}

func TestDue_AnnotatesOverdue(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	today := models.NewDate(2025, 6, 12)
	repo.On("Due", mock.Anything, today).Return([]models.RevisionWithProblem{
		{Revision: models.Revision{ID: 1, ScheduledDate: today.AddDays(-1)}, ProblemName: "Overdue"},
		{Revision: models.Revision{ID: 2, ScheduledDate: today}, ProblemName: "Due Today"},
	}, nil)

	revs, err := svc.Due(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, revs, 2)

	assert.True(t, revs[0].IsOverdue)
	assert.Equal(t, 1, revs[0].DaysOverdue)
	assert.False(t, revs[1].IsOverdue, "due exactly today is included but not overdue")
	assert.Equal(t, 0, revs[1].DaysOverdue)
}

func TestCalendar_ValidatesInput(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)
	today := models.NewDate(2025, 6, 12)

	_, err := svc.Calendar(context.Background(), 0, 2025, today)
	requireAppError(t, err, apperrors.ErrCodeValidation)

	_, err = svc.Calendar(context.Background(), 13, 2025, today)
	requireAppError(t, err, apperrors.ErrCodeValidation)

	_, err = svc.Calendar(context.Background(), 6, 0, today)
	requireAppError(t, err, apperrors.ErrCodeValidation)

	repo.AssertNotCalled(t, "ForMonth", mock.Anything, mock.Anything, mock.Anything)
}

func TestCalendar_GroupsByDate(t *testing.T) {
	repo := new(mocks.MockRevisionRepository)
	svc := services.NewRevisionService(repo)

	today := models.NewDate(2025, 6, 12)
	repo.On("ForMonth", mock.Anything, 6, 2025).Return([]models.RevisionWithProblem{
		{Revision: models.Revision{ID: 1, ScheduledDate: models.NewDate(2025, 6, 5)}},
		{Revision: models.Revision{ID: 2, ScheduledDate: models.NewDate(2025, 6, 5)}},
		{Revision: models.Revision{ID: 3, ScheduledDate: models.NewDate(2025, 6, 20)}},
	}, nil)

	calendar, err := svc.Calendar(context.Background(), 6, 2025, today)
	require.NoError(t, err)
	require.Len(t, calendar, 2)
	assert.Len(t, calendar["2025-06-05"], 2)
	assert.Len(t, calendar["2025-06-20"], 1)

	// The June 5th entries are a week past due.
	assert.True(t, calendar["2025-06-05"][0].IsOverdue)
	assert.Equal(t, 7, calendar["2025-06-05"][0].DaysOverdue)
	// The June 20th entry is in the future.
	assert.False(t, calendar["2025-06-20"][0].IsOverdue)
}
