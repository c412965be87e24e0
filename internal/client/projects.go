package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ProjectsClient implements the gitlab.ProjectsClient interface.
type ProjectsClient struct {
	httpClient *internalhttp.Client
}

// NewProjectsClient creates a new ProjectsClient.
func NewProjectsClient(httpClient *internalhttp.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Search lists projects matching a search term.
func (c *ProjectsClient) Search(ctx context.Context, opts *gitlab.SearchProjectsOptions) (*gitlab.ListResponse[gitlab.Project], error) {
	req, err := newCall(http.MethodGet, "/projects", "projects").withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Project](ctx, c.httpClient, req)
}

// Create creates a project in the caller's namespace.
func (c *ProjectsClient) Create(ctx context.Context, opts *gitlab.CreateProjectOptions) (*gitlab.Project, error) {
	req := newCall(http.MethodPost, "/projects", "new project").withBody(opts)

	return fetch[gitlab.Project](ctx, c.httpClient, req)
}

// Fork forks a project, optionally into namespace.
func (c *ProjectsClient) Fork(ctx context.Context, projectID string, opts *gitlab.ForkProjectOptions) (*gitlab.Project, error) {
	req, err := newCall(http.MethodPost, projectPath(projectID, "fork"), projectSubject(projectID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetch[gitlab.Project](ctx, c.httpClient, req)
}

// Get retrieves a project by numeric id or namespace path.
func (c *ProjectsClient) Get(ctx context.Context, projectID string, opts *gitlab.GetProjectOptions) (*gitlab.ProjectDetail, error) {
	req, err := newCall(http.MethodGet, projectPath(projectID), projectSubject(projectID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetch[gitlab.ProjectDetail](ctx, c.httpClient, req)
}

// Update changes project settings.
func (c *ProjectsClient) Update(ctx context.Context, projectID string, opts *gitlab.UpdateProjectOptions) (*gitlab.ProjectDetail, error) {
	req := newCall(http.MethodPut, projectPath(projectID), projectSubject(projectID)).withBody(opts)

	return fetch[gitlab.ProjectDetail](ctx, c.httpClient, req)
}

// ListForGroup lists the projects of a group.
func (c *ProjectsClient) ListForGroup(ctx context.Context, groupID string, opts *gitlab.ListGroupProjectsOptions) (*gitlab.ListResponse[gitlab.Project], error) {
	req, err := newCall(http.MethodGet, groupPath(groupID, "projects"), "group "+groupID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Project](ctx, c.httpClient, req)
}

// DefaultBranch resolves the project's default branch.
func (c *ProjectsClient) DefaultBranch(ctx context.Context, projectID string) (string, error) {
	project, err := c.Get(ctx, projectID, nil)
	if err != nil {
		return "", err
	}

	if project.DefaultBranch == "" {
		return "", fmt.Errorf("%w: %s", gitlab.ErrNoDefaultBranch, projectID)
	}

	return project.DefaultBranch, nil
}
