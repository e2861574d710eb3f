package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
	"github.com/mishasvintus/pr_range_explorer/internal/metrics"
)

// PullRequestQuery is one request through the pipeline.
type PullRequestQuery struct {
	Owner string
	Repo  string
	Range domain.DateRange
	// Token is the resolved credential, empty for unauthenticated access.
	Token string
}

// PRService runs validate, fetch, filter and format for a query.
type PRService struct {
	newSource SourceFactory
	metrics   metrics.Metrics
	log       logrus.FieldLogger
}

// NewPRService creates a new pull request service.
func NewPRService(newSource SourceFactory, m metrics.Metrics, log logrus.FieldLogger) *PRService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PRService{
		newSource: newSource,
		metrics:   m,
		log:       log,
	}
}

// GetPullRequests returns the pull requests of q.Owner/q.Repo with any lifecycle
// timestamp inside q.Range. Any stage failure aborts the whole request.
func (s *PRService) GetPullRequests(ctx context.Context, q PullRequestQuery) ([]domain.FormattedPullRequest, error) {
	start := time.Now()
	result, err := s.run(ctx, q)
	s.observe(err, time.Since(start))
	return result, err
}

func (s *PRService) run(ctx context.Context, q PullRequestQuery) ([]domain.FormattedPullRequest, error) {
	if q.Owner == "" || q.Repo == "" {
		return nil, ErrEmptySubject
	}

	source, err := s.newSource(q.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pull request source")
	}
	if source == nil {
		return nil, ErrNilSource
	}

	log := s.log.WithFields(logrus.Fields{
		"owner": q.Owner,
		"repo":  q.Repo,
		"range": q.Range.String(),
	})

	if err := Validate(ctx, source, q.Owner, q.Repo); err != nil {
		return nil, err
	}

	prs, err := source.ListPullRequests(ctx, q.Owner, q.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch pull requests for %s/%s", q.Owner, q.Repo)
	}

	filtered := FilterByDateRange(prs, q.Range)
	log.WithFields(logrus.Fields{
		"fetched":  len(prs),
		"filtered": len(filtered),
	}).Info("pull requests retrieved")

	return FormatPullRequests(filtered), nil
}

func (s *PRService) observe(err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case domain.IsNotFound(err, ""):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	s.metrics.ObservePipelineDuration(outcome, elapsed.Seconds())
}

// Validate checks that owner and repo exist. Both checks run concurrently on
// ctx; a failure does not cancel the other check, and the first failure is
// returned once both have finished.
func Validate(ctx context.Context, source PullRequestSource, owner, repo string) error {
	var g errgroup.Group
	g.Go(func() error {
		return source.CheckOwner(ctx, owner)
	})
	g.Go(func() error {
		return source.CheckRepo(ctx, owner, repo)
	})
	return g.Wait()
}
