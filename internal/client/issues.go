package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// IssuesClient implements the gitlab.IssuesClient interface.
type IssuesClient struct {
	httpClient *internalhttp.Client
}

// NewIssuesClient creates a new IssuesClient.
func NewIssuesClient(httpClient *internalhttp.Client) *IssuesClient {
	return &IssuesClient{httpClient: httpClient}
}

func issuePath(projectID string, issueIID int, rest ...string) string {
	return projectPath(projectID, append([]string{"issues", strconv.Itoa(issueIID)}, rest...)...)
}

func issueNotFound(projectID string, issueIID int) string {
	return fmt.Sprintf("Issue not found: Project ID %s, Issue IID %d", projectID, issueIID)
}

// List lists project issues. The IID filter is not a GitLab parameter: it
// is applied to the fetched page, and Count then reports the number of
// matches on that page instead of X-Total.
func (c *IssuesClient) List(ctx context.Context, projectID string, opts *gitlab.ListIssuesOptions) (*gitlab.ListResponse[gitlab.Issue], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "issues"), "issues of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	result, err := fetchList[gitlab.Issue](ctx, c.httpClient, req)
	if err != nil {
		return nil, err
	}

	if opts == nil || opts.IID == "" {
		return result, nil
	}

	filtered := make([]gitlab.Issue, 0, len(result.Items))

	for _, issue := range result.Items {
		if opts.IID.Matches(issue.IID) {
			filtered = append(filtered, issue)
		}
	}

	return &gitlab.ListResponse[gitlab.Issue]{
		Count: len(filtered),
		Items: filtered,
	}, nil
}

// Create creates an issue.
func (c *IssuesClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateIssueOptions) (*gitlab.Issue, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "issues"), "issue in project "+projectID).withBody(opts)

	return fetch[gitlab.Issue](ctx, c.httpClient, req)
}

// Update edits an issue.
func (c *IssuesClient) Update(ctx context.Context, projectID string, issueIID int, opts *gitlab.UpdateIssueOptions) (*gitlab.Issue, error) {
	req := newCall(http.MethodPut, issuePath(projectID, issueIID), issueSubject(projectID, issueIID)).
		withBody(opts).
		on(http.StatusNotFound, issueNotFound(projectID, issueIID))

	return fetch[gitlab.Issue](ctx, c.httpClient, req)
}

// CreateNote adds a comment to an issue.
func (c *IssuesClient) CreateNote(ctx context.Context, projectID string, issueIID int, opts *gitlab.CreateNoteOptions) (*gitlab.Note, error) {
	req := newCall(http.MethodPost, issuePath(projectID, issueIID, "notes"), issueSubject(projectID, issueIID)).
		withBody(opts).
		on(http.StatusNotFound, issueNotFound(projectID, issueIID))

	return fetch[gitlab.Note](ctx, c.httpClient, req)
}

// ListNotes lists the comments of an issue.
func (c *IssuesClient) ListNotes(ctx context.Context, projectID string, issueIID int, opts *gitlab.ListNotesOptions) (*gitlab.ListResponse[gitlab.Note], error) {
	req, err := newCall(http.MethodGet, issuePath(projectID, issueIID, "notes"), issueSubject(projectID, issueIID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	req.on(http.StatusNotFound, issueNotFound(projectID, issueIID)).
		on(http.StatusForbidden, "Permission denied to access issue notes")

	return fetchList[gitlab.Note](ctx, c.httpClient, req)
}

// ListDiscussions lists the discussion threads of an issue.
func (c *IssuesClient) ListDiscussions(ctx context.Context, projectID string, issueIID int, opts *gitlab.ListOptions) (*gitlab.ListResponse[gitlab.Discussion], error) {
	req, err := newCall(http.MethodGet, issuePath(projectID, issueIID, "discussions"), issueSubject(projectID, issueIID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	req.on(http.StatusNotFound, issueNotFound(projectID, issueIID)).
		on(http.StatusForbidden, "Permission denied to access issue discussions")

	return fetchList[gitlab.Discussion](ctx, c.httpClient, req)
}
