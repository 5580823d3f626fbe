// Package entities contains core business entities.
package entities

import "time"

// PullRequest is a read-only snapshot of a pull request record as supplied
// by the data source. MergedAt is nil while the PR is open or closed unmerged.
type PullRequest struct {
	ID        string
	Project   string
	AuthorID  string
	CreatedAt time.Time
	MergedAt  *time.Time
	IsDraft   bool
}

// Merged reports whether the PR has a merge timestamp.
func (pr PullRequest) Merged() bool {
	return pr.MergedAt != nil
}
