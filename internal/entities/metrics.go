// Package entities contains core business entities.
package entities

import "time"

// DateInterval is a half-open interval [Start, End) of absolute UTC timestamps.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the half-open interval.
func (i DateInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// CycleSample is one PR's creation-to-merge latency in hours, tagged with
// the project it belongs to.
type CycleSample struct {
	Project string
	Hours   float64
}

// MetricsResult aggregates a sample set into p50/p90 latency. When Count is
// zero both percentiles are zero, never NaN; callers rely on the uniform shape.
type MetricsResult struct {
	P50Hours float64 `json:"p50_hours"`
	P90Hours float64 `json:"p90_hours"`
	Count    int     `json:"count"`
}

// ProjectMetrics pairs a project name with its aggregate. A slice of these
// preserves first-seen project order, which Go maps cannot.
type ProjectMetrics struct {
	Project string        `json:"project"`
	Metrics MetricsResult `json:"metrics"`
}

// CycleTimeSummary is the org-wide (or single-project) aggregation result.
// ExcludedRecords counts corrupt records dropped during extraction.
type CycleTimeSummary struct {
	MetricsResult
	ExcludedRecords int `json:"excluded_records"`
}

// ProjectBreakdown is the per-project aggregation result.
type ProjectBreakdown struct {
	Projects        []ProjectMetrics `json:"projects"`
	ExcludedRecords int              `json:"excluded_records"`
}
