package domain

import (
	"errors"
	"fmt"
)

// Subjects of a NotFoundError.
const (
	SubjectOwner = "owner"
	SubjectRepo  = "repo"
)

var (
	ErrMissingCredential = errors.New("github token is required")
	ErrInvalidDateRange  = errors.New("invalid date range")
)

// NotFoundError reports that the owner or repository does not exist upstream.
type NotFoundError struct {
	Subject string
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Subject, e.Name)
}

// UpstreamError wraps any other failure talking to GitHub: transport errors,
// unexpected statuses and undecodable payloads.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a NotFoundError for the given subject.
// An empty subject matches any NotFoundError.
func IsNotFound(err error, subject string) bool {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	return subject == "" || nf.Subject == subject
}
