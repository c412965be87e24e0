// Package gitlabclient provides the main entry point for creating GitLab API clients.
package gitlabclient

import (
	"fmt"

	"github.com/fivetwenty-io/gitlab-mcp/internal/auth"
	"github.com/fivetwenty-io/gitlab-mcp/internal/client"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// New creates a GitLab API client from config.
func New(config *gitlab.Config) (gitlab.Client, error) {
	if config == nil {
		return nil, gitlab.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for baseURL authenticated with token.
func NewWithToken(baseURL, token string) (gitlab.Client, error) {
	creds, err := gitlab.NewCredentials(baseURL, token)
	if err != nil {
		return nil, err
	}

	return New(&gitlab.Config{Credentials: creds})
}

// NewFromKeyring creates a client for baseURL with the token stored in the
// OS keyring for that host.
func NewFromKeyring(baseURL string) (gitlab.Client, error) {
	token, err := auth.NewKeyringStore().Get(baseURL)
	if err != nil {
		return nil, fmt.Errorf("reading token from keyring: %w", err)
	}

	return NewWithToken(baseURL, token)
}
