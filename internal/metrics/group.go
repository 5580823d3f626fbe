package metrics

import "pr-cycle-metrics/internal/entities"

// GroupByProject partitions samples by project label and aggregates each
// bucket independently. Bucket order follows the first appearance of each
// label in samples, so iteration over identical input is reproducible.
// Every sample lands in exactly one bucket.
func GroupByProject(samples []entities.CycleSample) []entities.ProjectMetrics {
	order := make([]string, 0)
	buckets := make(map[string][]float64)

	for _, s := range samples {
		if _, seen := buckets[s.Project]; !seen {
			order = append(order, s.Project)
		}
		buckets[s.Project] = append(buckets[s.Project], s.Hours)
	}

	res := make([]entities.ProjectMetrics, 0, len(order))
	for _, name := range order {
		res = append(res, entities.ProjectMetrics{
			Project: name,
			Metrics: Aggregate(buckets[name]),
		})
	}
	return res
}
