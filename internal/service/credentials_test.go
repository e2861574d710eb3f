package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
)

func TestNewCredentialMode(t *testing.T) {
	tests := []struct {
		input   string
		want    CredentialMode
		wantErr bool
	}{
		{input: "server", want: CredentialModeServer},
		{input: " Request ", want: CredentialModeRequest},
		{input: "", wantErr: true},
		{input: "both", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewCredentialMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid credential mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialPolicy_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		policy       CredentialPolicy
		requestToken string
		want         string
		wantErr      error
	}{
		{
			name:         "server mode ignores caller token",
			policy:       CredentialPolicy{Mode: CredentialModeServer, ServerToken: "srv"},
			requestToken: "caller",
			want:         "srv",
		},
		{
			name:   "server mode without token is anonymous",
			policy: CredentialPolicy{Mode: CredentialModeServer},
			want:   "",
		},
		{
			name:    "server mode without token when required",
			policy:  CredentialPolicy{Mode: CredentialModeServer, Required: true},
			wantErr: domain.ErrMissingCredential,
		},
		{
			name:         "request mode uses caller token only",
			policy:       CredentialPolicy{Mode: CredentialModeRequest, ServerToken: "srv"},
			requestToken: "caller",
			want:         "caller",
		},
		{
			name:    "request mode does not fall back to server token",
			policy:  CredentialPolicy{Mode: CredentialModeRequest, ServerToken: "srv", Required: true},
			wantErr: domain.ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Resolve(tt.requestToken)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
