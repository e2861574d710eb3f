package service

import (
	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

// FormatPullRequests projects prs to the shape returned by the API.
// The result is never nil so an empty match encodes as []. CreatedAt is the
// calendar day in the timestamp's own offset.
func FormatPullRequests(prs []domain.PullRequest) []domain.FormattedPullRequest {
	formatted := make([]domain.FormattedPullRequest, len(prs))
	for i, pr := range prs {
		formatted[i] = domain.FormattedPullRequest{
			ID:        pr.ID,
			User:      pr.UserLogin,
			Title:     pr.Title,
			State:     pr.State,
			CreatedAt: pr.CreatedAt.Format(domain.DateLayout),
		}
	}
	return formatted
}
