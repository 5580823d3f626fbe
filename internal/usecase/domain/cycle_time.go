package domain

import (
	"context"
	"fmt"

	"pr-cycle-metrics/internal/entities"
	"pr-cycle-metrics/internal/metrics"
)

// CycleTime aggregates p50/p90 cycle time over the interval, optionally for a
// single project. A fetch failure is propagated; it is never reported as an
// empty result.
func (u *Usecase) CycleTime(ctx context.Context, interval entities.DateInterval, project string) (entities.CycleTimeSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateInterval(interval); err != nil {
		return entities.CycleTimeSummary{}, err
	}

	records, err := u.repo.MergedBetween(ctx, interval, project)
	if err != nil {
		return entities.CycleTimeSummary{}, fmt.Errorf("fetch merged prs: %w", err)
	}

	extracted := metrics.Extract(records, interval, project)
	if extracted.Corrupt > 0 {
		u.log.Warnw("corrupt pr records excluded",
			"count", extracted.Corrupt,
			"interval_start", interval.Start,
			"project", project,
		)
	}

	hours := make([]float64, 0, len(extracted.Samples))
	for _, s := range extracted.Samples {
		hours = append(hours, s.Hours)
	}

	return entities.CycleTimeSummary{
		MetricsResult:   metrics.Aggregate(hours),
		ExcludedRecords: extracted.Corrupt,
	}, nil
}

// CycleTimeByProject aggregates cycle time independently per project, ordered
// by first appearance in the snapshot. Projects with no merged PRs in the
// interval are absent from the result.
func (u *Usecase) CycleTimeByProject(ctx context.Context, interval entities.DateInterval) (entities.ProjectBreakdown, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateInterval(interval); err != nil {
		return entities.ProjectBreakdown{}, err
	}

	records, err := u.repo.MergedBetween(ctx, interval, "")
	if err != nil {
		return entities.ProjectBreakdown{}, fmt.Errorf("fetch merged prs: %w", err)
	}

	extracted := metrics.Extract(records, interval, "")
	if extracted.Corrupt > 0 {
		u.log.Warnw("corrupt pr records excluded",
			"count", extracted.Corrupt,
			"interval_start", interval.Start,
		)
	}

	return entities.ProjectBreakdown{
		Projects:        metrics.GroupByProject(extracted.Samples),
		ExcludedRecords: extracted.Corrupt,
	}, nil
}

func validateInterval(interval entities.DateInterval) error {
	if interval.Start.IsZero() || !interval.End.After(interval.Start) {
		return fmt.Errorf("%w: interval end must be after start", entities.ErrInvalidArgument)
	}
	return nil
}
