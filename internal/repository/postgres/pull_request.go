package postgres

import (
	"context"
	"fmt"

	"pr-cycle-metrics/internal/entities"
)

// The merged_at bounds mirror the half-open window the extractor applies:
// inclusive start, exclusive end. ORDER BY keeps snapshot order deterministic
// so first-seen project grouping is reproducible across runs.
const mergedBetweenQuery = `
SELECT id, project, author_id, created_at, merged_at, is_draft
FROM pull_requests
WHERE merged_at IS NOT NULL
  AND merged_at >= $1
  AND merged_at < $2
ORDER BY merged_at, id`

const mergedBetweenProjectQuery = `
SELECT id, project, author_id, created_at, merged_at, is_draft
FROM pull_requests
WHERE merged_at IS NOT NULL
  AND merged_at >= $1
  AND merged_at < $2
  AND project = $3
ORDER BY merged_at, id`

// MergedBetween returns PRs merged inside [interval.Start, interval.End),
// optionally narrowed to a single project. Draft rows are returned as-is;
// the extractor owns the eligibility rules.
func (p *Postgres) MergedBetween(ctx context.Context, interval entities.DateInterval, project string) ([]entities.PullRequest, error) {
	query := mergedBetweenQuery
	args := []any{interval.Start, interval.End}
	if project != "" {
		query = mergedBetweenProjectQuery
		args = append(args, project)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to query merged prs", "error", err)
		return nil, fmt.Errorf("select merged prs: %w", err)
	}
	defer rows.Close()

	prs := make([]entities.PullRequest, 0)
	for rows.Next() {
		var pr entities.PullRequest
		if err := rows.Scan(&pr.ID, &pr.Project, &pr.AuthorID, &pr.CreatedAt, &pr.MergedAt, &pr.IsDraft); err != nil {
			p.log.Errorw("failed to scan merged pr", "error", err)
			return nil, fmt.Errorf("scan merged pr: %w", err)
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating merged prs", "error", err)
		return nil, fmt.Errorf("iterate merged prs: %w", err)
	}

	return prs, nil
}
