// Package auth supplies the bearer token to the transport and keeps an
// optional copy of it in the OS keyring.
package auth

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// StaticTokenManager serves the personal access token carried by a set of
// credentials. GitLab access tokens are not refreshed, so the token never
// changes for the lifetime of a client.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager for creds.
func NewStaticTokenManager(creds gitlab.Credentials) *StaticTokenManager {
	return &StaticTokenManager{token: creds.Token()}
}

// GetToken returns the token, or gitlab.ErrTokenRequired when there is none.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m == nil || m.token == "" {
		return "", gitlab.ErrTokenRequired
	}

	return m.token, nil
}
