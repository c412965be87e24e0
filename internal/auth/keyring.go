package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrTokenNotFound  = errors.New("no token stored in the OS keyring")
	ErrKeyringAPIURL  = errors.New("cannot derive keyring entry from API URL")
	ErrKeyringFailure = errors.New("keyring error")
)

// KeyringStore keeps one token per GitLab host in the OS keyring (macOS
// Keychain, Secret Service on Linux, Windows Credential Manager).
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store under the gitlab-mcp service name.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: constants.KeyringService}
}

// Get returns the token stored for apiURL's host.
func (s *KeyringStore) Get(apiURL string) (string, error) {
	user, err := keyringUser(apiURL)
	if err != nil {
		return "", err
	}

	token, err := keyring.Get(s.service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w for %s", ErrTokenNotFound, user)
		}

		return "", fmt.Errorf("%w: %w", ErrKeyringFailure, err)
	}

	return token, nil
}

// Set stores token for apiURL's host, replacing any previous one.
func (s *KeyringStore) Set(apiURL, token string) error {
	user, err := keyringUser(apiURL)
	if err != nil {
		return err
	}

	if err := keyring.Set(s.service, user, token); err != nil {
		return fmt.Errorf("%w: %w", ErrKeyringFailure, err)
	}

	return nil
}

// Delete removes the token for apiURL's host.
func (s *KeyringStore) Delete(apiURL string) error {
	user, err := keyringUser(apiURL)
	if err != nil {
		return err
	}

	if err := keyring.Delete(s.service, user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%w for %s", ErrTokenNotFound, user)
		}

		return fmt.Errorf("%w: %w", ErrKeyringFailure, err)
	}

	return nil
}

// keyringUser keys entries by host so one keyring can hold tokens for
// gitlab.com and self-managed instances side by side.
func keyringUser(apiURL string) (string, error) {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return "", ErrKeyringAPIURL
	}

	if !strings.Contains(apiURL, "://") {
		apiURL = "https://" + apiURL
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrKeyringAPIURL, apiURL)
	}

	return strings.ToLower(u.Host), nil
}
