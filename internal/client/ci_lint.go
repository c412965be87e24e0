package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// CILintClient implements the gitlab.CILintClient interface.
//
// A lint runs in three steps. The content is resolved first: given content
// is used verbatim, and empty content is read from .gitlab-ci.yml on the
// project's default branch. The content is then posted to the project's lint
// endpoint, and the reply is reduced to a CILintResult. Any failure ends the
// run; nothing is retried.
type CILintClient struct {
	httpClient *internalhttp.Client
	projects   gitlab.ProjectsClient
	files      gitlab.FilesClient
}

// NewCILintClient creates a new CILintClient.
func NewCILintClient(httpClient *internalhttp.Client, projects gitlab.ProjectsClient, files gitlab.FilesClient) *CILintClient {
	return &CILintClient{
		httpClient: httpClient,
		projects:   projects,
		files:      files,
	}
}

type ciLintBody struct {
	Content           string `json:"content"`
	IncludeMergedYAML bool   `json:"include_merged_yaml"`
}

// Lint validates CI configuration in the context of projectID.
func (c *CILintClient) Lint(ctx context.Context, projectID string, opts *gitlab.CILintOptions) (*gitlab.CILintResult, error) {
	if opts == nil {
		opts = &gitlab.CILintOptions{}
	}

	content, err := c.resolveContent(ctx, projectID, opts.Content)
	if err != nil {
		return nil, err
	}

	wantMerged := opts.WantsMergedYAML()

	req := newCall(http.MethodPost, projectPath(projectID, "ci", "lint"), "CI lint of project "+projectID).
		withBody(&ciLintBody{Content: content, IncludeMergedYAML: wantMerged})

	resp, err := fetch[gitlab.CILintResponse](ctx, c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("GitLab CI lint API error: %w", err)
	}

	return lintResult(resp, wantMerged), nil
}

// resolveContent returns content unchanged unless it is empty, in which
// case the project's CI file is read from its default branch.
func (c *CILintClient) resolveContent(ctx context.Context, projectID, content string) (string, error) {
	if content != "" {
		return content, nil
	}

	branch, err := c.projects.DefaultBranch(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gitlab.ErrCIConfigUnavailable, err)
	}

	file, err := c.files.Get(ctx, projectID, constants.CIConfigPath, branch)
	if err != nil {
		return "", fmt.Errorf("%w: %w", gitlab.ErrCIConfigUnavailable, err)
	}

	return file.Content, nil
}

func lintResult(resp *gitlab.CILintResponse, wantMerged bool) *gitlab.CILintResult {
	result := &gitlab.CILintResult{
		Valid:    resp.LintStatus() && len(resp.Errors) == 0,
		Errors:   nonNil(resp.Errors),
		Warnings: nonNil(resp.Warnings),
	}

	if !wantMerged {
		return result
	}

	result.MergedYAML = resp.MergedYAML

	includes := make([]string, 0, len(resp.Includes))
	for _, include := range resp.Includes {
		includes = append(includes, string(include))
	}

	result.Includes = &includes

	return result
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
