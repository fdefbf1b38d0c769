package scheduler

import "github.com/algorecall/algorecall/internal/models"

// GroupByDate buckets revisions by their exact scheduled date, keyed by the
// ISO date string. Days without revisions are simply absent from the map.
func GroupByDate(revs []models.RevisionWithProblem) map[string][]models.RevisionWithProblem {
	grouped := make(map[string][]models.RevisionWithProblem)
	for _, rev := range revs {
		key := rev.ScheduledDate.String()
		grouped[key] = append(grouped[key], rev)
	}
	return grouped
}
