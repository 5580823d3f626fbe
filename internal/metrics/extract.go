package metrics

import "pr-cycle-metrics/internal/entities"

// Extraction is the outcome of reducing a PR snapshot to cycle-time samples.
// Corrupt counts records that passed selection but carried unusable data
// (merge before creation, missing creation timestamp); they are excluded from
// Samples and surfaced to the caller rather than silently dropped.
type Extraction struct {
	Samples []entities.CycleSample
	Corrupt int
}

// Extract reduces records to one cycle-time sample per eligible PR.
//
// A record contributes iff it is not a draft, has a merge timestamp, that
// timestamp falls within the half-open interval, and — when project is
// non-empty — its label matches exactly (case-sensitive). The window is
// defined on merge time: a PR created before the window but merged inside it
// counts, one merged at interval.End or later does not.
func Extract(records []entities.PullRequest, interval entities.DateInterval, project string) Extraction {
	res := Extraction{Samples: make([]entities.CycleSample, 0, len(records))}

	for _, pr := range records {
		if pr.IsDraft || !pr.Merged() {
			continue
		}
		if !interval.Contains(*pr.MergedAt) {
			continue
		}
		if project != "" && pr.Project != project {
			continue
		}

		if pr.CreatedAt.IsZero() {
			res.Corrupt++
			continue
		}
		hours := pr.MergedAt.Sub(pr.CreatedAt).Hours()
		if hours < 0 {
			res.Corrupt++
			continue
		}

		res.Samples = append(res.Samples, entities.CycleSample{
			Project: pr.Project,
			Hours:   hours,
		})
	}

	return res
}
