package service

import (
	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

// FilterByDateRange keeps the pull requests with at least one of created_at,
// updated_at, closed_at or merged_at inside rng. Input order is preserved.
func FilterByDateRange(prs []domain.PullRequest, rng domain.DateRange) []domain.PullRequest {
	filtered := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if inRange(pr, rng) {
			filtered = append(filtered, pr)
		}
	}
	return filtered
}

func inRange(pr domain.PullRequest, rng domain.DateRange) bool {
	for _, ts := range pr.Timestamps() {
		if rng.Contains(ts) {
			return true
		}
	}
	return false
}
