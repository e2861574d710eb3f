// Package github reads users, repositories and pull requests from the GitHub REST API.
package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v41/github"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
	"github.com/mishasvintus/pr_range_explorer/internal/metrics"
	"github.com/mishasvintus/pr_range_explorer/internal/service"
)

const (
	DefaultBaseURL  = "https://api.github.com/"
	DefaultTimeout  = 30 * time.Second
	DefaultMaxPages = 100

	perPage = 100
)

// Operation names, used in UpstreamError.Op and as metric labels.
const (
	opCheckOwner = "check_owner"
	opCheckRepo  = "check_repo"
	opListPulls  = "list_pulls"
)

var ErrPageLimitExceeded = errors.New("page limit exceeded")

// Client is a PullRequestSource backed by go-github.
type Client struct {
	api      *gh.Client
	maxPages int
	metrics  metrics.Metrics
	log      logrus.FieldLogger
}

type options struct {
	timeout   time.Duration
	maxPages  int
	metrics   metrics.Metrics
	log       logrus.FieldLogger
	transport http.RoundTripper
}

// Option configures a Client.
type Option func(*options)

// WithTimeout bounds every HTTP exchange with GitHub.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMaxPages caps pagination; 0 disables the cap.
func WithMaxPages(n int) Option {
	return func(o *options) { o.maxPages = n }
}

func WithMetrics(m metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithTransport replaces the base round tripper underneath the credential.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// NewClient creates a client for the API rooted at baseURL.
// A non-empty token is sent as a bearer credential on every request.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	o := options{
		timeout:  DefaultTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}
	if o.maxPages < 0 {
		return nil, errors.Errorf("max pages must not be negative, got %d", o.maxPages)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid github api url %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid github api url %q: scheme and host are required", baseURL)
	}

	transport := o.transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}

	api := gh.NewClient(&http.Client{
		Timeout:   o.timeout,
		Transport: transport,
	})
	api.BaseURL = u

	return &Client{
		api:      api,
		maxPages: o.maxPages,
		metrics:  o.metrics,
		log:      o.log,
	}, nil
}

// NewSourceFactory returns a factory building one Client per credential.
func NewSourceFactory(baseURL string, opts ...Option) service.SourceFactory {
	return func(token string) (service.PullRequestSource, error) {
		c, err := NewClient(baseURL, token, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// CheckOwner verifies that owner is an existing user or organization.
func (c *Client) CheckOwner(ctx context.Context, owner string) error {
	_, _, err := c.api.Users.Get(ctx, owner)
	return c.result(opCheckOwner, domain.SubjectOwner, owner, err)
}

// CheckRepo verifies that owner/repo exists and is visible with the current credential.
func (c *Client) CheckRepo(ctx context.Context, owner, repo string) error {
	_, _, err := c.api.Repositories.Get(ctx, owner, repo)
	return c.result(opCheckRepo, domain.SubjectRepo, repo, err)
}

// ListPullRequests returns every pull request of owner/repo in any state, newest
// first, following the Link header until no next page is advertised.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State:       "all",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: perPage, Page: 1},
	}
	log := c.log.WithFields(logrus.Fields{"owner": owner, "repo": repo})

	var all []domain.PullRequest
	for fetched := 0; ; fetched++ {
		if c.maxPages > 0 && fetched >= c.maxPages {
			c.incRequests(opListPulls, metrics.OutcomeError)
			return nil, &domain.UpstreamError{
				Op:    opListPulls,
				Cause: errors.Wrapf(ErrPageLimitExceeded, "%s/%s has more than %d pages", owner, repo, c.maxPages),
			}
		}

		page, resp, err := c.api.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			c.incRequests(opListPulls, metrics.OutcomeError)
			return nil, &domain.UpstreamError{
				Op:    opListPulls,
				Cause: errors.Wrapf(err, "page %d", opts.Page),
			}
		}
		if c.metrics != nil {
			c.metrics.IncrementUpstreamPages()
		}

		for _, pr := range page {
			all = append(all, toDomain(pr))
		}
		log.WithFields(logrus.Fields{"page": opts.Page, "count": len(page)}).Debug("fetched pull request page")

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.incRequests(opListPulls, metrics.OutcomeSuccess)
	return all, nil
}

func (c *Client) result(op, subject, name string, err error) error {
	if err == nil {
		c.incRequests(op, metrics.OutcomeSuccess)
		return nil
	}

	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		c.incRequests(op, metrics.OutcomeNotFound)
		return &domain.NotFoundError{Subject: subject, Name: name}
	}

	c.incRequests(op, metrics.OutcomeError)
	return &domain.UpstreamError{Op: op, Cause: err}
}

func (c *Client) incRequests(op, outcome string) {
	if c.metrics != nil {
		c.metrics.IncrementUpstreamRequests(op, outcome)
	}
}

func toDomain(pr *gh.PullRequest) domain.PullRequest {
	return domain.PullRequest{
		ID:        pr.GetID(),
		Title:     pr.GetTitle(),
		State:     domain.PRState(pr.GetState()),
		UserLogin: pr.GetUser().GetLogin(),
		CreatedAt: pr.GetCreatedAt(),
		UpdatedAt: pr.UpdatedAt,
		ClosedAt:  pr.ClosedAt,
		MergedAt:  pr.MergedAt,
	}
}
