package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ListIssuesArgs are the arguments of list_issues.
type ListIssuesArgs struct {
	ProjectArgs
	gitlab.ListIssuesOptions
}

// CreateIssueArgs are the arguments of create_issue.
type CreateIssueArgs struct {
	ProjectArgs
	gitlab.CreateIssueOptions
}

// UpdateIssueArgs are the arguments of update_issue.
type UpdateIssueArgs struct {
	IssueArgs
	gitlab.UpdateIssueOptions
}

// CreateIssueNoteArgs are the arguments of create_issue_note.
type CreateIssueNoteArgs struct {
	IssueArgs
	gitlab.CreateNoteOptions
}

// ListIssueNotesArgs are the arguments of list_issue_notes.
type ListIssueNotesArgs struct {
	IssueArgs
	gitlab.ListNotesOptions
}

// ListIssueDiscussionsArgs are the arguments of list_issue_discussions.
type ListIssueDiscussionsArgs struct {
	IssueArgs
	gitlab.ListOptions
}

func issueTools() []Tool {
	return []Tool{
		newTool("list_issues", "Get issues for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListIssuesArgs) (interface{}, error) {
				return c.Issues().List(ctx, a.ProjectID.String(), &a.ListIssuesOptions)
			}),
		newTool("create_issue", "Create a new issue in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateIssueArgs) (interface{}, error) {
				return c.Issues().Create(ctx, a.ProjectID.String(), &a.CreateIssueOptions)
			}),
		newTool("update_issue", "Update an existing issue", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateIssueArgs) (interface{}, error) {
				return c.Issues().Update(ctx, a.ProjectID.String(), a.IssueIID, &a.UpdateIssueOptions)
			}),
		newTool("create_issue_note", "Add a comment to an issue", false,
			func(ctx context.Context, c gitlab.Client, a *CreateIssueNoteArgs) (interface{}, error) {
				return c.Issues().CreateNote(ctx, a.ProjectID.String(), a.IssueIID, &a.CreateNoteOptions)
			}),
		newTool("list_issue_notes", "Fetch all comments and system notes for a GitLab issue", true,
			func(ctx context.Context, c gitlab.Client, a *ListIssueNotesArgs) (interface{}, error) {
				return c.Issues().ListNotes(ctx, a.ProjectID.String(), a.IssueIID, &a.ListNotesOptions)
			}),
		newTool("list_issue_discussions", "Fetch all discussions (threaded comments) for a GitLab issue", true,
			func(ctx context.Context, c gitlab.Client, a *ListIssueDiscussionsArgs) (interface{}, error) {
				return c.Issues().ListDiscussions(ctx, a.ProjectID.String(), a.IssueIID, &a.ListOptions)
			}),
	}
}
