package handler

import (
	"context"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
	"github.com/mishasvintus/pr_range_explorer/internal/service"
)

// PRServiceInterface defines the interface for pull request retrieval.
type PRServiceInterface interface {
	GetPullRequests(ctx context.Context, q service.PullRequestQuery) ([]domain.FormattedPullRequest, error)
}
