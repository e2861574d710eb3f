package domain

import (
	"fmt"
	"time"
)

// PRState represents the lifecycle state of a pull request as reported by GitHub.
type PRState string

// PR state constants.
const (
	StateOpen   PRState = "open"
	StateClosed PRState = "closed"
)

// NewPRState creates a new PRState with validation.
// Returns an error if the state is invalid.
func NewPRState(s string) (PRState, error) {
	state := PRState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid PR state: %s (must be one of: %s, %s)", s, StateOpen, StateClosed)
	}
	return state, nil
}

// IsValid checks if the state is valid.
func (s PRState) IsValid() bool {
	return s == StateOpen || s == StateClosed
}

// PullRequest is the subset of a remote pull request the service works with.
// UpdatedAt, ClosedAt and MergedAt are nil when GitHub reports them as null.
type PullRequest struct {
	ID        int64
	Title     string
	State     PRState
	UserLogin string
	CreatedAt time.Time
	UpdatedAt *time.Time
	ClosedAt  *time.Time
	MergedAt  *time.Time
}

// Timestamps returns every non-nil timestamp of the pull request,
// created_at first.
func (pr PullRequest) Timestamps() []time.Time {
	ts := make([]time.Time, 0, 4)
	ts = append(ts, pr.CreatedAt)
	for _, t := range []*time.Time{pr.UpdatedAt, pr.ClosedAt, pr.MergedAt} {
		if t != nil {
			ts = append(ts, *t)
		}
	}
	return ts
}

// FormattedPullRequest is the projection returned by GET /pulls.
type FormattedPullRequest struct {
	ID        int64   `json:"id"`
	User      string  `json:"user"`
	Title     string  `json:"title"`
	State     PRState `json:"state"`
	CreatedAt string  `json:"created_at"`
}
