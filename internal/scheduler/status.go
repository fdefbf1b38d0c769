package scheduler

import "github.com/algorecall/algorecall/internal/models"

// Status is the derived due-state of a scheduled revision. It is computed on
// every read and never persisted, since it changes as the calendar advances
// without any write happening.
type Status struct {
	IsOverdue   bool
	DaysOverdue int
}

// DeriveStatus reports whether a revision is overdue relative to today and by
// how many whole days. A completed revision is never overdue.
func DeriveStatus(scheduled models.Date, isCompleted bool, today models.Date) Status {
	if isCompleted || !scheduled.Before(today) {
		return Status{}
	}
	return Status{
		IsOverdue:   true,
		DaysOverdue: today.DaysSince(scheduled),
	}
}

// Annotate stamps the derived overdue fields onto a joined revision row.
func Annotate(rev models.RevisionWithProblem, today models.Date) models.RevisionWithProblem {
	st := DeriveStatus(rev.ScheduledDate, rev.IsCompleted, today)
	rev.IsOverdue = st.IsOverdue
	rev.DaysOverdue = st.DaysOverdue
	return rev
}
