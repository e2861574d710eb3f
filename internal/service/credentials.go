package service

import (
	"fmt"
	"strings"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

// CredentialMode selects where the GitHub token of a request comes from.
type CredentialMode string

const (
	// CredentialModeServer uses the token configured on the server and ignores callers.
	CredentialModeServer CredentialMode = "server"
	// CredentialModeRequest uses the token supplied by the caller only.
	CredentialModeRequest CredentialMode = "request"
)

// NewCredentialMode validates s.
func NewCredentialMode(s string) (CredentialMode, error) {
	mode := CredentialMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case CredentialModeServer, CredentialModeRequest:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid credential mode: %q (must be one of: %s, %s)", s, CredentialModeServer, CredentialModeRequest)
	}
}

// CredentialPolicy decides which token a request runs with.
type CredentialPolicy struct {
	Mode        CredentialMode
	ServerToken string
	Required    bool
}

// Resolve returns the token to use for a request carrying requestToken.
// It returns domain.ErrMissingCredential when a token is required and none is available.
func (p CredentialPolicy) Resolve(requestToken string) (string, error) {
	var token string
	if p.Mode == CredentialModeRequest {
		token = requestToken
	} else {
		token = p.ServerToken
	}

	if token == "" && p.Required {
		return "", domain.ErrMissingCredential
	}
	return token, nil
}
