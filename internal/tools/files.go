package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// GetFileArgs are the arguments of get_file_contents.
type GetFileArgs struct {
	ProjectArgs

	FilePath string `json:"file_path" shape:"required" desc:"Path to the file or directory"`
	Ref      string `json:"ref"       shape:"required" desc:"Branch/tag/commit to get contents from"`
}

// CreateOrUpdateFileArgs are the arguments of create_or_update_file.
type CreateOrUpdateFileArgs struct {
	ProjectArgs
	gitlab.CreateOrUpdateFileOptions

	FilePath string `json:"file_path" shape:"required" desc:"Path where to create/update the file"`
}

// PushFilesArgs are the arguments of push_files.
type PushFilesArgs struct {
	ProjectArgs

	Branch        string                 `json:"branch"         shape:"required" desc:"Branch to push to"`
	CommitMessage string                 `json:"commit_message" shape:"required" desc:"Commit message"`
	Files         []gitlab.FileOperation `json:"files"          shape:"required" desc:"Array of files to push"`
}

// CommitActionArgs is one action of create_commit.
type CommitActionArgs struct {
	Action   string `json:"action"    shape:"default=create,enum=create|update|delete|move" desc:"Action to perform on the file"`
	FilePath string `json:"file_path" shape:"required"                                      desc:"Path of the file"`
	Content  string `json:"content,omitempty"                                                desc:"Content of the file"`
}

// CreateCommitArgs are the arguments of create_commit.
type CreateCommitArgs struct {
	ProjectArgs

	Branch        string             `json:"branch"         shape:"required" desc:"Branch to commit to"`
	CommitMessage string             `json:"commit_message" shape:"required" desc:"Commit message"`
	Actions       []CommitActionArgs `json:"actions"        shape:"required" desc:"File actions of the commit"`
}

func fileTools() []Tool {
	return []Tool{
		newTool("get_file_contents", "Get the contents of a file or directory from a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *GetFileArgs) (interface{}, error) {
				return c.Files().Get(ctx, a.ProjectID.String(), a.FilePath, a.Ref)
			}),
		newTool("create_or_update_file", "Create or update a single file in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateOrUpdateFileArgs) (interface{}, error) {
				return c.Files().CreateOrUpdate(ctx, a.ProjectID.String(), a.FilePath, &a.CreateOrUpdateFileOptions)
			}),
		newTool("push_files", "Push multiple files to a GitLab project in a single commit", false,
			func(ctx context.Context, c gitlab.Client, a *PushFilesArgs) (interface{}, error) {
				return c.Files().Push(ctx, a.ProjectID.String(), a.Branch, a.CommitMessage, a.Files)
			}),
		newTool("create_commit", "Create a commit with multiple file actions", false,
			func(ctx context.Context, c gitlab.Client, a *CreateCommitArgs) (interface{}, error) {
				opts := &gitlab.CreateCommitOptions{
					Branch:        a.Branch,
					CommitMessage: a.CommitMessage,
					Actions:       make([]gitlab.CommitAction, 0, len(a.Actions)),
				}

				for _, action := range a.Actions {
					opts.Actions = append(opts.Actions, gitlab.CommitAction{
						Action:   action.Action,
						FilePath: action.FilePath,
						Content:  action.Content,
					})
				}

				return c.Commits().Create(ctx, a.ProjectID.String(), opts)
			}),
	}
}
