package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// UsersClient implements the gitlab.UsersClient interface.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Current returns the user that owns the token.
func (c *UsersClient) Current(ctx context.Context) (*gitlab.UserDetail, error) {
	return fetch[gitlab.UserDetail](ctx, c.httpClient, newCall(http.MethodGet, "/user", "current user"))
}

// List lists users.
func (c *UsersClient) List(ctx context.Context, opts *gitlab.ListUsersOptions) (*gitlab.ListResponse[gitlab.UserDetail], error) {
	req, err := newCall(http.MethodGet, "/users", "users").withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.UserDetail](ctx, c.httpClient, req)
}

// Get retrieves a user by id.
func (c *UsersClient) Get(ctx context.Context, userID int) (*gitlab.UserDetail, error) {
	return fetch[gitlab.UserDetail](ctx, c.httpClient, newCall(http.MethodGet, path("users", strconv.Itoa(userID)), fmt.Sprintf("user %d", userID)))
}
