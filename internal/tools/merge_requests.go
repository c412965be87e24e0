package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ListMergeRequestsArgs are the arguments of list_merge_requests.
type ListMergeRequestsArgs struct {
	ProjectArgs
	gitlab.ListMergeRequestsOptions
}

// CreateMergeRequestArgs are the arguments of create_merge_request.
type CreateMergeRequestArgs struct {
	ProjectArgs
	gitlab.CreateMergeRequestOptions
}

// UpdateMergeRequestArgs are the arguments of update_merge_request.
type UpdateMergeRequestArgs struct {
	MergeRequestArgs
	gitlab.UpdateMergeRequestOptions
}

// MergeRequestChangesArgs are the arguments of get_merge_request_changes.
type MergeRequestChangesArgs struct {
	MergeRequestArgs
	gitlab.GetChangesOptions
}

// MergeRequestPageArgs are the arguments of the paginated merge request
// reads without further filters.
type MergeRequestPageArgs struct {
	MergeRequestArgs
	gitlab.ListOptions
}

// ApproveArgs are the arguments of approve_merge_request.
type ApproveArgs struct {
	MergeRequestArgs
	gitlab.ApproveMergeRequestOptions
}

// MergeArgs are the arguments of merge_merge_request and set_auto_merge.
type MergeArgs struct {
	MergeRequestArgs
	gitlab.MergeOptions
}

// RebaseArgs are the arguments of rebase_merge_request.
type RebaseArgs struct {
	MergeRequestArgs
	gitlab.RebaseOptions
}

// MergeRequestNotesArgs are the arguments of list_merge_request_notes.
type MergeRequestNotesArgs struct {
	MergeRequestArgs
	gitlab.ListNotesOptions
}

// CreateMergeRequestNoteArgs are the arguments of create_merge_request_note.
type CreateMergeRequestNoteArgs struct {
	MergeRequestArgs
	gitlab.CreateNoteOptions
}

// UpdateMergeRequestNoteArgs are the arguments of update_merge_request_note.
type UpdateMergeRequestNoteArgs struct {
	MergeRequestArgs
	gitlab.UpdateNoteOptions

	NoteID int `json:"note_id" shape:"required,min=1" desc:"The ID of the note"`
}

// CreateDiscussionArgs are the arguments of create_merge_request_discussion.
type CreateDiscussionArgs struct {
	MergeRequestArgs
	gitlab.CreateDiscussionOptions
}

func mergeRequestTools() []Tool {
	return []Tool{
		newTool("list_merge_requests", "Get merge requests for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListMergeRequestsArgs) (interface{}, error) {
				return c.MergeRequests().List(ctx, a.ProjectID.String(), &a.ListMergeRequestsOptions)
			}),
		newTool("create_merge_request", "Create a new merge request in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateMergeRequestArgs) (interface{}, error) {
				return c.MergeRequests().Create(ctx, a.ProjectID.String(), &a.CreateMergeRequestOptions)
			}),
		newTool("update_merge_request", "Update an existing merge request", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateMergeRequestArgs) (interface{}, error) {
				return c.MergeRequests().Update(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.UpdateMergeRequestOptions)
			}),
		newTool("get_merge_request_changes", "Get the changes/diffs for a merge request", true,
			func(ctx context.Context, c gitlab.Client, a *MergeRequestChangesArgs) (interface{}, error) {
				return c.MergeRequests().GetChanges(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.GetChangesOptions)
			}),
		newTool("get_merge_request_commits", "Get the commits for a merge request", true,
			func(ctx context.Context, c gitlab.Client, a *MergeRequestPageArgs) (interface{}, error) {
				return c.MergeRequests().ListCommits(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.ListOptions)
			}),
		newTool("approve_merge_request", "Approve a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *ApproveArgs) (interface{}, error) {
				return c.MergeRequests().Approve(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.ApproveMergeRequestOptions)
			}),
		newTool("unapprove_merge_request", "Remove your approval from a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *MergeRequestArgs) (interface{}, error) {
				return c.MergeRequests().Unapprove(ctx, a.ProjectID.String(), a.MergeRequestIID)
			}),
		newTool("merge_merge_request", "Merge a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *MergeArgs) (interface{}, error) {
				return c.MergeRequests().Merge(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.MergeOptions)
			}),
		newTool("set_auto_merge", "Set a merge request to merge when pipeline succeeds (auto-merge)", false,
			func(ctx context.Context, c gitlab.Client, a *MergeArgs) (interface{}, error) {
				return c.MergeRequests().SetAutoMerge(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.MergeOptions)
			}),
		newTool("cancel_auto_merge", "Cancel auto-merge for a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *MergeRequestArgs) (interface{}, error) {
				return c.MergeRequests().CancelAutoMerge(ctx, a.ProjectID.String(), a.MergeRequestIID)
			}),
		newTool("rebase_merge_request", "Rebase a merge request onto the target branch", false,
			func(ctx context.Context, c gitlab.Client, a *RebaseArgs) (interface{}, error) {
				return c.MergeRequests().Rebase(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.RebaseOptions)
			}),
		newTool("list_merge_request_notes", "List all comments and notes on a merge request", true,
			func(ctx context.Context, c gitlab.Client, a *MergeRequestNotesArgs) (interface{}, error) {
				return c.MergeRequests().ListNotes(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.ListNotesOptions)
			}),
		newTool("create_merge_request_note", "Add a comment to a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *CreateMergeRequestNoteArgs) (interface{}, error) {
				return c.MergeRequests().CreateNote(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.CreateNoteOptions)
			}),
		newTool("update_merge_request_note", "Edit a comment on a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateMergeRequestNoteArgs) (interface{}, error) {
				return c.MergeRequests().UpdateNote(ctx, a.ProjectID.String(), a.MergeRequestIID, a.NoteID, &a.UpdateNoteOptions)
			}),
		newTool("list_merge_request_discussions", "List all discussions (threaded comments) on a merge request", true,
			func(ctx context.Context, c gitlab.Client, a *MergeRequestPageArgs) (interface{}, error) {
				return c.MergeRequests().ListDiscussions(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.ListOptions)
			}),
		newTool("create_merge_request_discussion", "Create a new discussion on a merge request", false,
			func(ctx context.Context, c gitlab.Client, a *CreateDiscussionArgs) (interface{}, error) {
				return c.MergeRequests().CreateDiscussion(ctx, a.ProjectID.String(), a.MergeRequestIID, &a.CreateDiscussionOptions)
			}),
	}
}
