package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ReleasesClient implements the gitlab.ReleasesClient interface.
type ReleasesClient struct {
	httpClient *internalhttp.Client
}

// NewReleasesClient creates a new ReleasesClient.
func NewReleasesClient(httpClient *internalhttp.Client) *ReleasesClient {
	return &ReleasesClient{httpClient: httpClient}
}

// List lists project releases.
func (c *ReleasesClient) List(ctx context.Context, projectID string, opts *gitlab.ListReleasesOptions) (*gitlab.ListResponse[gitlab.Release], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "releases"), "releases of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Release](ctx, c.httpClient, req)
}

// Create creates a release, and its tag when Ref is given.
func (c *ReleasesClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateReleaseOptions) (*gitlab.Release, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "releases"), "release in project "+projectID).withBody(opts)

	return fetch[gitlab.Release](ctx, c.httpClient, req)
}

// ProtectedBranchesClient implements the gitlab.ProtectedBranchesClient interface.
type ProtectedBranchesClient struct {
	httpClient *internalhttp.Client
}

// NewProtectedBranchesClient creates a new ProtectedBranchesClient.
func NewProtectedBranchesClient(httpClient *internalhttp.Client) *ProtectedBranchesClient {
	return &ProtectedBranchesClient{httpClient: httpClient}
}

// List lists protected branches.
func (c *ProtectedBranchesClient) List(ctx context.Context, projectID string, opts *gitlab.ListProtectedBranchesOptions) (*gitlab.ListResponse[gitlab.ProtectedBranch], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "protected_branches"), "protected branches of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.ProtectedBranch](ctx, c.httpClient, req)
}

// Protect protects a branch or wildcard.
func (c *ProtectedBranchesClient) Protect(ctx context.Context, projectID string, opts *gitlab.ProtectBranchOptions) (*gitlab.ProtectedBranch, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "protected_branches"), "protected branches of project "+projectID).withBody(opts)

	return fetch[gitlab.ProtectedBranch](ctx, c.httpClient, req)
}

// Unprotect removes the protection of a branch.
func (c *ProtectedBranchesClient) Unprotect(ctx context.Context, projectID, name string) error {
	req := newCall(http.MethodDelete, projectPath(projectID, "protected_branches", gitlab.PathSegment(name)), "protected branch "+name+" in project "+projectID)

	_, err := req.send(ctx, c.httpClient)

	return err
}
