package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// MergeRequestsClient implements the gitlab.MergeRequestsClient interface.
type MergeRequestsClient struct {
	httpClient *internalhttp.Client
}

// NewMergeRequestsClient creates a new MergeRequestsClient.
func NewMergeRequestsClient(httpClient *internalhttp.Client) *MergeRequestsClient {
	return &MergeRequestsClient{httpClient: httpClient}
}

func mergeRequestPath(projectID string, mrIID int, rest ...string) string {
	return projectPath(projectID, append([]string{"merge_requests", strconv.Itoa(mrIID)}, rest...)...)
}

func mergeRequestNotFound(projectID string, mrIID int) string {
	return fmt.Sprintf("Merge request not found: Project ID %s, MR IID %d", projectID, mrIID)
}

// mrCall builds a call addressed at one merge request, with the shared 404
// wording.
func mrCall(method, projectID string, mrIID int, rest ...string) *call {
	return newCall(method, mergeRequestPath(projectID, mrIID, rest...), mergeRequestSubject(projectID, mrIID)).
		on(http.StatusNotFound, mergeRequestNotFound(projectID, mrIID))
}

// List lists project merge requests.
func (c *MergeRequestsClient) List(ctx context.Context, projectID string, opts *gitlab.ListMergeRequestsOptions) (*gitlab.ListResponse[gitlab.MergeRequest], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "merge_requests"), "merge requests of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// Create opens a merge request.
func (c *MergeRequestsClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateMergeRequestOptions) (*gitlab.MergeRequest, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "merge_requests"), "merge request in project "+projectID).withBody(opts)

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// Update edits a merge request.
func (c *MergeRequestsClient) Update(ctx context.Context, projectID string, mrIID int, opts *gitlab.UpdateMergeRequestOptions) (*gitlab.MergeRequest, error) {
	req := mrCall(http.MethodPut, projectID, mrIID).withBody(opts)

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// GetChanges returns a merge request with its diffs.
func (c *MergeRequestsClient) GetChanges(ctx context.Context, projectID string, mrIID int, opts *gitlab.GetChangesOptions) (*gitlab.MergeRequestChanges, error) {
	req, err := mrCall(http.MethodGet, projectID, mrIID, "changes").withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetch[gitlab.MergeRequestChanges](ctx, c.httpClient, req)
}

// ListCommits lists the commits of a merge request.
func (c *MergeRequestsClient) ListCommits(ctx context.Context, projectID string, mrIID int, opts *gitlab.ListOptions) (*gitlab.ListResponse[gitlab.Commit], error) {
	req, err := mrCall(http.MethodGet, projectID, mrIID, "commits").withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Commit](ctx, c.httpClient, req)
}

// Approve approves a merge request. A SHA pins the approval to that head.
func (c *MergeRequestsClient) Approve(ctx context.Context, projectID string, mrIID int, opts *gitlab.ApproveMergeRequestOptions) (*gitlab.MergeRequest, error) {
	req := mrCall(http.MethodPost, projectID, mrIID, "approve").
		on(http.StatusUnauthorized, "Unauthorized: You don't have permission to approve this merge request").
		on(http.StatusConflict, "SHA mismatch: The merge request has been updated since the SHA was provided")

	if opts != nil && opts.SHA != "" {
		req.withBody(opts)
	}

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// Unapprove withdraws the caller's approval.
func (c *MergeRequestsClient) Unapprove(ctx context.Context, projectID string, mrIID int) (*gitlab.MergeRequest, error) {
	req := mrCall(http.MethodPost, projectID, mrIID, "unapprove")

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// Merge accepts a merge request.
func (c *MergeRequestsClient) Merge(ctx context.Context, projectID string, mrIID int, opts *gitlab.MergeOptions) (*gitlab.MergeRequest, error) {
	if opts == nil {
		opts = &gitlab.MergeOptions{}
	}

	req := mrCall(http.MethodPut, projectID, mrIID, "merge").
		withBody(opts).
		on(http.StatusUnauthorized, "Unauthorized: You don't have permission to merge this merge request").
		on(http.StatusMethodNotAllowed, "Cannot merge: The merge request is in a state that cannot be merged (draft, closed, or pipeline pending)").
		on(http.StatusNotAcceptable, "Cannot merge: There are conflicts between source and target branches").
		on(http.StatusConflict, "SHA mismatch: The source branch has been updated since the SHA was provided")

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// autoMergeBody is the merge body with merge_when_pipeline_succeeds set.
type autoMergeBody struct {
	*gitlab.MergeOptions

	MergeWhenPipelineSucceeds bool `json:"merge_when_pipeline_succeeds"`
}

// SetAutoMerge merges the merge request once its pipeline succeeds.
func (c *MergeRequestsClient) SetAutoMerge(ctx context.Context, projectID string, mrIID int, opts *gitlab.MergeOptions) (*gitlab.MergeRequest, error) {
	if opts == nil {
		opts = &gitlab.MergeOptions{}
	}

	req := mrCall(http.MethodPut, projectID, mrIID, "merge").
		withBody(&autoMergeBody{MergeOptions: opts, MergeWhenPipelineSucceeds: true}).
		on(http.StatusUnauthorized, "Unauthorized: You don't have permission to set auto-merge").
		on(http.StatusMethodNotAllowed, "Cannot set auto-merge: The merge request is in a state that cannot be merged").
		on(http.StatusNotAcceptable, "Cannot set auto-merge: There are conflicts between source and target branches")

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// CancelAutoMerge cancels a pending merge-when-pipeline-succeeds.
func (c *MergeRequestsClient) CancelAutoMerge(ctx context.Context, projectID string, mrIID int) (*gitlab.MergeRequest, error) {
	req := mrCall(http.MethodPost, projectID, mrIID, "cancel_merge_when_pipeline_succeeds").
		on(http.StatusNotAcceptable, "Cannot cancel auto-merge: The merge request is not set to auto-merge")

	return fetch[gitlab.MergeRequest](ctx, c.httpClient, req)
}

// Rebase starts a rebase of the source branch onto the target branch.
func (c *MergeRequestsClient) Rebase(ctx context.Context, projectID string, mrIID int, opts *gitlab.RebaseOptions) (*gitlab.RebaseResult, error) {
	if opts == nil {
		opts = &gitlab.RebaseOptions{}
	}

	req := mrCall(http.MethodPut, projectID, mrIID, "rebase").withBody(opts)

	return fetch[gitlab.RebaseResult](ctx, c.httpClient, req)
}

// ListNotes lists the comments of a merge request.
func (c *MergeRequestsClient) ListNotes(ctx context.Context, projectID string, mrIID int, opts *gitlab.ListNotesOptions) (*gitlab.ListResponse[gitlab.Note], error) {
	req, err := mrCall(http.MethodGet, projectID, mrIID, "notes").withQuery(opts)
	if err != nil {
		return nil, err
	}

	req.on(http.StatusForbidden, "Permission denied to access merge request notes")

	return fetchList[gitlab.Note](ctx, c.httpClient, req)
}

// CreateNote adds a comment to a merge request.
func (c *MergeRequestsClient) CreateNote(ctx context.Context, projectID string, mrIID int, opts *gitlab.CreateNoteOptions) (*gitlab.Note, error) {
	req := mrCall(http.MethodPost, projectID, mrIID, "notes").withBody(opts)

	return fetch[gitlab.Note](ctx, c.httpClient, req)
}

// UpdateNote edits a merge request comment.
func (c *MergeRequestsClient) UpdateNote(ctx context.Context, projectID string, mrIID, noteID int, opts *gitlab.UpdateNoteOptions) (*gitlab.Note, error) {
	req := newCall(http.MethodPut, mergeRequestPath(projectID, mrIID, "notes", strconv.Itoa(noteID)), fmt.Sprintf("note %d on %s", noteID, mergeRequestSubject(projectID, mrIID))).
		withBody(opts).
		on(http.StatusNotFound, fmt.Sprintf("Note not found: Project ID %s, MR IID %d, Note ID %d", projectID, mrIID, noteID))

	return fetch[gitlab.Note](ctx, c.httpClient, req)
}

// ListDiscussions lists the discussion threads of a merge request.
func (c *MergeRequestsClient) ListDiscussions(ctx context.Context, projectID string, mrIID int, opts *gitlab.ListOptions) (*gitlab.ListResponse[gitlab.Discussion], error) {
	req, err := mrCall(http.MethodGet, projectID, mrIID, "discussions").withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Discussion](ctx, c.httpClient, req)
}

// CreateDiscussion starts a thread, on a diff line when a position is set.
func (c *MergeRequestsClient) CreateDiscussion(ctx context.Context, projectID string, mrIID int, opts *gitlab.CreateDiscussionOptions) (*gitlab.Discussion, error) {
	req := mrCall(http.MethodPost, projectID, mrIID, "discussions").withBody(opts)

	return fetch[gitlab.Discussion](ctx, c.httpClient, req)
}
