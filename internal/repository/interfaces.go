// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"pr-cycle-metrics/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// PullRequestSource exposes the read-only PR snapshot used by the metrics
// core: merged PRs whose merge timestamp falls in [interval.Start,
// interval.End), optionally narrowed to one project.
type PullRequestSource interface {
	MergedBetween(ctx context.Context, interval entities.DateInterval, project string) ([]entities.PullRequest, error)
}
