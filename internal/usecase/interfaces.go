package usecase

import (
	"context"

	"pr-cycle-metrics/internal/entities"
)

// MetricsUsecaseInterface abstracts cycle-time aggregation for the delivery
// layer. Both operations work over the half-open interval resolved from an
// ISO week identifier; the project filter is an exact match, empty means all.
type MetricsUsecaseInterface interface {
	CycleTime(ctx context.Context, interval entities.DateInterval, project string) (entities.CycleTimeSummary, error)
	CycleTimeByProject(ctx context.Context, interval entities.DateInterval) (entities.ProjectBreakdown, error)
}
