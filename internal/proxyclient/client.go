// Package proxyclient calls the GET /pulls endpoint of a running server.
package proxyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

const DefaultTimeout = 60 * time.Second

// Query is one request for pull requests.
type Query struct {
	Owner     string
	Repo      string
	StartDate string
	EndDate   string
	// Token is sent only when set; servers in server credential mode ignore it.
	Token string
}

// APIError is a non-2xx answer from the server. Message is the server's
// "error" field, or the status text when the body carries none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to one server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client for the server at baseURL, e.g. http://localhost:3000.
// A nil httpClient means a client with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server url %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid server url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// Fetch returns the pull requests the server reports for q.
func (c *Client) Fetch(ctx context.Context, q Query) ([]domain.FormattedPullRequest, error) {
	params := url.Values{}
	params.Set("owner", q.Owner)
	params.Set("repo", q.Repo)
	params.Set("startDate", q.StartDate)
	params.Set("endDate", q.EndDate)
	if q.Token != "" {
		params.Set("token", q.Token)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/pulls"
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach server")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, body)
	}

	prs := []domain.FormattedPullRequest{}
	if err := json.Unmarshal(body, &prs); err != nil {
		return nil, errors.Wrap(err, "failed to decode pull requests")
	}
	return prs, nil
}

func apiError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: status, Message: payload.Error}
	}
	return &APIError{StatusCode: status, Message: fmt.Sprintf("server returned %d %s", status, http.StatusText(status))}
}
