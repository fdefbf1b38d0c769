// Package scheduler holds the spaced-repetition core: the interval policy,
// overdue derivation, streak calculation and calendar grouping. All functions
// are pure; "today" is always an explicit argument so the logic stays
// testable with fixed dates.
package scheduler

import (
	"fmt"

	"github.com/algorecall/algorecall/internal/models"
)

// Rating is the 3-level self-assessment given when completing a revision.
type Rating int

const (
	RatingForgot    Rating = 1
	RatingStruggled Rating = 2
	RatingMastered  Rating = 3
)

func (r Rating) Valid() bool {
	return r >= RatingForgot && r <= RatingMastered
}

// Intervals is the fixed milestone spacing schedule in days, indexed by
// revision number. Once the revision number runs past the table, the
// schedule saturates at the fallback plateaus below.
var Intervals = [...]int{0, 1, 3, 7, 14, 30, 90}

const (
	struggledPlateau = 14
	masteredCap      = 90
)

// NextInterval maps a rating and the just-completed revision's number to the
// number of days until the next revision.
//
//   - RatingForgot resets to 1 day. The revision number keeps incrementing so
//     total effort stays visible in the history.
//   - RatingStruggled holds at roughly the prior milestone, never below 1 day.
//   - RatingMastered advances one milestone past the current one.
//
// The indexing here (revisionNumber-1 for struggled, revisionNumber for
// mastered) encodes the mapping between completed revisions and milestones;
// the worked values are pinned by tests.
func NextInterval(rating Rating, revisionNumber int) (int, error) {
	if !rating.Valid() {
		return 0, fmt.Errorf("invalid rating %d: must be 1, 2 or 3", rating)
	}

	switch rating {
	case RatingForgot:
		return 1, nil
	case RatingStruggled:
		if revisionNumber < len(Intervals) {
			idx := revisionNumber - 1
			if idx < 1 {
				idx = 1
			}
			return Intervals[idx], nil
		}
		return struggledPlateau, nil
	default: // RatingMastered
		if revisionNumber < len(Intervals) {
			return Intervals[revisionNumber], nil
		}
		return masteredCap, nil
	}
}

// FirstRevisionDate is when a freshly created problem is first due: the next
// calendar day.
func FirstRevisionDate(today models.Date) models.Date {
	return today.AddDays(1)
}
