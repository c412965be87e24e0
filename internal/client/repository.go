package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// RepositoryClient implements the gitlab.RepositoryClient interface.
type RepositoryClient struct {
	httpClient *internalhttp.Client
}

// NewRepositoryClient creates a new RepositoryClient.
func NewRepositoryClient(httpClient *internalhttp.Client) *RepositoryClient {
	return &RepositoryClient{httpClient: httpClient}
}

// ListTree lists files and directories of the repository.
func (c *RepositoryClient) ListTree(ctx context.Context, projectID string, opts *gitlab.ListTreeOptions) (*gitlab.ListResponse[gitlab.TreeNode], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "repository", "tree"), "repository tree of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.TreeNode](ctx, c.httpClient, req)
}

// Compare compares two refs.
func (c *RepositoryClient) Compare(ctx context.Context, projectID string, opts *gitlab.CompareOptions) (*gitlab.Compare, error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "repository", "compare"), "comparison in project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetch[gitlab.Compare](ctx, c.httpClient, req)
}

// CommitsClient implements the gitlab.CommitsClient interface.
type CommitsClient struct {
	httpClient *internalhttp.Client
}

// NewCommitsClient creates a new CommitsClient.
func NewCommitsClient(httpClient *internalhttp.Client) *CommitsClient {
	return &CommitsClient{httpClient: httpClient}
}

// List lists repository commits.
func (c *CommitsClient) List(ctx context.Context, projectID string, opts *gitlab.ListCommitsOptions) (*gitlab.ListResponse[gitlab.Commit], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "repository", "commits"), "commits of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Commit](ctx, c.httpClient, req)
}

// Create commits a set of file actions in one go. Every action is sent
// as-is, so callers decide between create, update and delete.
func (c *CommitsClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateCommitOptions) (*gitlab.Commit, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "repository", "commits"), "commit in project "+projectID).withBody(opts)

	return fetch[gitlab.Commit](ctx, c.httpClient, req)
}

// BranchesClient implements the gitlab.BranchesClient interface.
type BranchesClient struct {
	httpClient *internalhttp.Client
	projects   gitlab.ProjectsClient
}

// NewBranchesClient creates a new BranchesClient. projects resolves the
// default branch when a branch is created without a ref.
func NewBranchesClient(httpClient *internalhttp.Client, projects gitlab.ProjectsClient) *BranchesClient {
	return &BranchesClient{httpClient: httpClient, projects: projects}
}

// Create creates a branch from opts.Ref, or from the default branch when
// no ref is given.
func (c *BranchesClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateBranchOptions) (*gitlab.Branch, error) {
	body := gitlab.CreateBranchOptions{}
	if opts != nil {
		body = *opts
	}

	if body.Ref == "" {
		ref, err := c.projects.DefaultBranch(ctx, projectID)
		if err != nil {
			return nil, err
		}

		body.Ref = ref
	}

	req := newCall(http.MethodPost, projectPath(projectID, "repository", "branches"), "branch "+body.Branch+" in project "+projectID).withBody(&body)

	return fetch[gitlab.Branch](ctx, c.httpClient, req)
}

// List lists repository branches.
func (c *BranchesClient) List(ctx context.Context, projectID string, opts *gitlab.ListBranchesOptions) (*gitlab.ListResponse[gitlab.Branch], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "repository", "branches"), "branches of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Branch](ctx, c.httpClient, req)
}

// Delete removes a branch.
func (c *BranchesClient) Delete(ctx context.Context, projectID, branch string) error {
	req := newCall(http.MethodDelete, projectPath(projectID, "repository", "branches", gitlab.PathSegment(branch)), "branch "+branch+" in project "+projectID)

	_, err := req.send(ctx, c.httpClient)

	return err
}

// TagsClient implements the gitlab.TagsClient interface.
type TagsClient struct {
	httpClient *internalhttp.Client
}

// NewTagsClient creates a new TagsClient.
func NewTagsClient(httpClient *internalhttp.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

// List lists repository tags.
func (c *TagsClient) List(ctx context.Context, projectID string, opts *gitlab.ListTagsOptions) (*gitlab.ListResponse[gitlab.Tag], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "repository", "tags"), "tags of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Tag](ctx, c.httpClient, req)
}

// Create creates a tag.
func (c *TagsClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateTagOptions) (*gitlab.Tag, error) {
	subject := "tag in project " + projectID
	if opts != nil {
		subject = "tag " + opts.TagName + " in project " + projectID
	}

	req := newCall(http.MethodPost, projectPath(projectID, "repository", "tags"), subject).withBody(opts)

	return fetch[gitlab.Tag](ctx, c.httpClient, req)
}
