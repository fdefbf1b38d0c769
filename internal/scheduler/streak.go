package scheduler

import (
	"sort"

	"github.com/algorecall/algorecall/internal/models"
)

// Streak computes the number of consecutive calendar days with at least one
// completion, ending at the most recent completion date. The chain only
// counts while it is alive: if the latest completion is older than yesterday
// the streak is 0, no matter how long the run further back was.
func Streak(completionDates []models.Date, today models.Date) int {
	dates := distinctDesc(completionDates)
	if len(dates) == 0 {
		return 0
	}

	yesterday := today.AddDays(-1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		if dates[i].DaysSince(dates[i+1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// distinctDesc collapses duplicates and sorts most recent first.
func distinctDesc(dates []models.Date) []models.Date {
	seen := make(map[string]struct{}, len(dates))
	out := make([]models.Date, 0, len(dates))
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		key := d.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}
