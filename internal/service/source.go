package service

//go:generate mockgen -destination=mock_source_test.go -package=service . PullRequestSource

import (
	"context"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

// PullRequestSource is the remote hosting API the pipeline reads from.
//
// CheckOwner and CheckRepo return *domain.NotFoundError when the subject does not
// exist and *domain.UpstreamError for any other failure. ListPullRequests returns
// every pull request of the repository in source order, or an error and no results.
type PullRequestSource interface {
	CheckOwner(ctx context.Context, owner string) error
	CheckRepo(ctx context.Context, owner, repo string) error
	ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error)
}

// SourceFactory builds a source authenticated with token.
// An empty token means unauthenticated requests.
type SourceFactory func(token string) (PullRequestSource, error)
