package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/algorecall/algorecall/internal/db"
	"github.com/algorecall/algorecall/internal/models"
	"github.com/algorecall/algorecall/internal/repository"
	"github.com/algorecall/algorecall/internal/repository/sqlite"
	"github.com/algorecall/algorecall/internal/testutil"
)

type RevisionRepositorySuite struct {
	suite.Suite
	db       *db.DB
	repo     repository.RevisionRepository
	problems repository.ProblemRepository
}

func (s *RevisionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewRevisionRepository(s.db.DB)
	s.problems = sqlite.NewProblemRepository(s.db.DB)
}

func (s *RevisionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

// createProblem inserts a problem whose first revision is due on the given date
// and returns the problem id and its pending revision id.
func (s *RevisionRepositorySuite) createProblem(name, category string, firstDue models.Date) (int64, int64) {
	ctx := context.Background()
	problem, err := s.problems.Create(ctx, models.NewProblem{Name: name, Category: category}, firstDue)
	s.Require().NoError(err)

	var revisionID int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM revisions WHERE problem_id = ?`, problem.ID).Scan(&revisionID)
	s.Require().NoError(err)
	return problem.ID, revisionID
}

func (s *RevisionRepositorySuite) TestGet() {
	_, revisionID := s.createProblem("Two Sum", "arrays", models.NewDate(2025, 6, 13))

	rev, err := s.repo.Get(context.Background(), revisionID)
	s.Require().NoError(err)
	s.Require().NotNil(rev)
	s.Assert().Equal(1, rev.RevisionNumber)
	s.Assert().Equal("2025-06-13", rev.ScheduledDate.String())
	s.Assert().False(rev.IsCompleted)
	s.Assert().Nil(rev.CompletedDate)
	s.Assert().Nil(rev.Rating)
}

func (s *RevisionRepositorySuite) TestGet_NotFound() {
	rev, err := s.repo.Get(context.Background(), 999)
	s.Require().NoError(err)
	s.Assert().Nil(rev)
}

func (s *RevisionRepositorySuite) TestDue_IncludesTodayAndOverdue() {
	today := models.NewDate(2025, 6, 12)
	s.createProblem("Due Today", "arrays", today)
	s.createProblem("Overdue", "graphs", today.AddDays(-1))
	s.createProblem("Future", "dp", today.AddDays(3))

	revs, err := s.repo.Due(context.Background(), today)
	s.Require().NoError(err)
	s.Require().Len(revs, 2)

	// Ordered by scheduled date, so the overdue one comes first.
	s.Assert().Equal("Overdue", revs[0].ProblemName)
	s.Assert().Equal("Due Today", revs[1].ProblemName)
}

func (s *RevisionRepositorySuite) TestDue_ExcludesArchivedAndCompleted() {
	ctx := context.Background()
	today := models.NewDate(2025, 6, 12)

	archivedID, _ := s.createProblem("Archived", "arrays", today)
	s.Require().NoError(s.problems.Archive(ctx, archivedID))

	_, completedRevID := s.createProblem("Completed", "graphs", today)
	_, err := s.db.ExecContext(ctx, `UPDATE revisions SET is_completed = 1, completed_date = ?, rating = 2 WHERE id = ?`, today, completedRevID)
	s.Require().NoError(err)

	revs, err := s.repo.Due(ctx, today)
	s.Require().NoError(err)
	s.Assert().Empty(revs)
}

func (s *RevisionRepositorySuite) TestForMonth_FiltersByMonthAndYear() {
	ctx := context.Background()
	s.createProblem("June A", "arrays", models.NewDate(2025, 6, 5))
	s.createProblem("June B", "graphs", models.NewDate(2025, 6, 5))
	s.createProblem("June C", "dp", models.NewDate(2025, 6, 20))
	s.createProblem("July", "dp", models.NewDate(2025, 7, 1))
	s.createProblem("Last Year", "dp", models.NewDate(2024, 6, 5))

	revs, err := s.repo.ForMonth(ctx, 6, 2025)
	s.Require().NoError(err)
	s.Assert().Len(revs, 3)
	for _, rev := range revs {
		s.Assert().Equal(2025, rev.ScheduledDate.Year())
		s.Assert().Equal(6, int(rev.ScheduledDate.Month()))
	}
}

func (s *RevisionRepositorySuite) TestForMonth_IncludesCompletedExcludesArchived() {
	ctx := context.Background()

	_, completedRevID := s.createProblem("Completed", "arrays", models.NewDate(2025, 6, 5))
	_, err := s.db.ExecContext(ctx, `UPDATE revisions SET is_completed = 1, completed_date = '2025-06-05', rating = 3 WHERE id = ?`, completedRevID)
	s.Require().NoError(err)

	archivedID, _ := s.createProblem("Archived", "graphs", models.NewDate(2025, 6, 6))
	s.Require().NoError(s.problems.Archive(ctx, archivedID))

	revs, err := s.repo.ForMonth(ctx, 6, 2025)
	s.Require().NoError(err)
	s.Require().Len(revs, 1, "completed revisions stay on the calendar, archived problems do not")
	s.Assert().True(revs[0].IsCompleted)
}

func (s *RevisionRepositorySuite) TestComplete_CreatesSingleSuccessor() {
	ctx := context.Background()
	today := models.NewDate(2025, 6, 12)
	problemID, revisionID := s.createProblem("Two Sum", "arrays", today)

	next := models.Revision{
		ProblemID:      problemID,
		RevisionNumber: 2,
		ScheduledDate:  today.AddDays(3),
	}
	s.Require().NoError(s.repo.Complete(ctx, revisionID, today, 3, next))

	completed, err := s.repo.Get(ctx, revisionID)
	s.Require().NoError(err)
	s.Require().NotNil(completed)
	s.Assert().True(completed.IsCompleted)
	s.Require().NotNil(completed.CompletedDate)
	s.Assert().Equal("2025-06-12", completed.CompletedDate.String())
	s.Require().NotNil(completed.Rating)
	s.Assert().Equal(3, *completed.Rating)

	var pending int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revisions WHERE problem_id = ? AND is_completed = 0`, problemID).Scan(&pending)
	s.Require().NoError(err)
	s.Assert().Equal(1, pending, "exactly one pending revision after completion")

	var number int
	var scheduled models.Date
	err = s.db.QueryRowContext(ctx, `
SELECT revision_number, scheduled_date FROM revisions WHERE problem_id = ? AND is_completed = 0
`, problemID).Scan(&number, &scheduled)
	s.Require().NoError(err)
	s.Assert().Equal(2, number)
	s.Assert().Equal("2025-06-15", scheduled.String())
}

func (s *RevisionRepositorySuite) TestComplete_NotFound() {
	today := models.NewDate(2025, 6, 12)
	err := s.repo.Complete(context.Background(), 999, today, 3, models.Revision{})
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (s *RevisionRepositorySuite) TestComplete_AlreadyCompletedLeavesNoExtraSuccessor() {
	ctx := context.Background()
	today := models.NewDate(2025, 6, 12)
	problemID, revisionID := s.createProblem("Two Sum", "arrays", today)

	next := models.Revision{ProblemID: problemID, RevisionNumber: 2, ScheduledDate: today.AddDays(3)}
	s.Require().NoError(s.repo.Complete(ctx, revisionID, today, 3, next))

	err := s.repo.Complete(ctx, revisionID, today, 1, next)
	s.Assert().ErrorIs(err, repository.ErrAlreadyCompleted)

	var total int
	err2 := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revisions WHERE problem_id = ?`, problemID).Scan(&total)
	s.Require().NoError(err2)
	s.Assert().Equal(2, total, "the rejected completion must not schedule another successor")
}

func TestRevisionRepositorySuite(t *testing.T) {
	suite.Run(t, new(RevisionRepositorySuite))
}
