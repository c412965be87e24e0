package tools

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ListCommitsArgs are the arguments of list_commits.
type ListCommitsArgs struct {
	ProjectArgs
	gitlab.ListCommitsOptions
}

// CreateBranchArgs are the arguments of create_branch.
type CreateBranchArgs struct {
	ProjectArgs
	gitlab.CreateBranchOptions
}

// ListBranchesArgs are the arguments of list_branches.
type ListBranchesArgs struct {
	ProjectArgs
	gitlab.ListBranchesOptions
}

// DeleteBranchArgs are the arguments of delete_branch.
type DeleteBranchArgs struct {
	ProjectArgs

	Branch string `json:"branch" shape:"required" desc:"Name of the branch to delete"`
}

// CompareArgs are the arguments of compare_branches.
type CompareArgs struct {
	ProjectArgs
	gitlab.CompareOptions
}

// ListTagsArgs are the arguments of list_tags.
type ListTagsArgs struct {
	ProjectArgs
	gitlab.ListTagsOptions
}

// CreateTagArgs are the arguments of create_tag.
type CreateTagArgs struct {
	ProjectArgs
	gitlab.CreateTagOptions
}

// ListTreeArgs are the arguments of get_repository_tree.
type ListTreeArgs struct {
	ProjectArgs
	gitlab.ListTreeOptions
}

// ListReleasesArgs are the arguments of list_releases.
type ListReleasesArgs struct {
	ProjectArgs
	gitlab.ListReleasesOptions
}

// CreateReleaseArgs are the arguments of create_release.
type CreateReleaseArgs struct {
	ProjectArgs
	gitlab.CreateReleaseOptions
}

// ListProtectedBranchesArgs are the arguments of list_protected_branches.
type ListProtectedBranchesArgs struct {
	ProjectArgs
	gitlab.ListProtectedBranchesOptions
}

// ProtectBranchArgs are the arguments of protect_branch.
type ProtectBranchArgs struct {
	ProjectArgs
	gitlab.ProtectBranchOptions
}

// UnprotectBranchArgs are the arguments of unprotect_branch.
type UnprotectBranchArgs struct {
	ProjectArgs

	Name string `json:"name" shape:"required" desc:"Branch name or wildcard"`
}

func repositoryTools() []Tool {
	return []Tool{
		newTool("list_commits", "Get commit history for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListCommitsArgs) (interface{}, error) {
				return c.Commits().List(ctx, a.ProjectID.String(), &a.ListCommitsOptions)
			}),
		newTool("create_branch", "Create a new branch in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateBranchArgs) (interface{}, error) {
				return c.Branches().Create(ctx, a.ProjectID.String(), &a.CreateBranchOptions)
			}),
		newTool("list_branches", "List branches for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListBranchesArgs) (interface{}, error) {
				return c.Branches().List(ctx, a.ProjectID.String(), &a.ListBranchesOptions)
			}),
		newTool("delete_branch", "Delete a branch from a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *DeleteBranchArgs) (interface{}, error) {
				if err := c.Branches().Delete(ctx, a.ProjectID.String(), a.Branch); err != nil {
					return nil, err
				}

				return Text(fmt.Sprintf("Branch '%s' has been deleted.", a.Branch)), nil
			}),
		newTool("compare_branches", "Compare two branches, tags, or commits", true,
			func(ctx context.Context, c gitlab.Client, a *CompareArgs) (interface{}, error) {
				return c.Repository().Compare(ctx, a.ProjectID.String(), &a.CompareOptions)
			}),
		newTool("list_tags", "List tags for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListTagsArgs) (interface{}, error) {
				return c.Tags().List(ctx, a.ProjectID.String(), &a.ListTagsOptions)
			}),
		newTool("create_tag", "Create a new tag in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateTagArgs) (interface{}, error) {
				return c.Tags().Create(ctx, a.ProjectID.String(), &a.CreateTagOptions)
			}),
		newTool("get_repository_tree", "Get the repository file tree", true,
			func(ctx context.Context, c gitlab.Client, a *ListTreeArgs) (interface{}, error) {
				return c.Repository().ListTree(ctx, a.ProjectID.String(), &a.ListTreeOptions)
			}),
		newTool("list_releases", "List releases for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListReleasesArgs) (interface{}, error) {
				return c.Releases().List(ctx, a.ProjectID.String(), &a.ListReleasesOptions)
			}),
		newTool("create_release", "Create a new release for a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateReleaseArgs) (interface{}, error) {
				return c.Releases().Create(ctx, a.ProjectID.String(), &a.CreateReleaseOptions)
			}),
		newTool("list_protected_branches", "List protected branches for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListProtectedBranchesArgs) (interface{}, error) {
				return c.ProtectedBranches().List(ctx, a.ProjectID.String(), &a.ListProtectedBranchesOptions)
			}),
		newTool("protect_branch", "Protect a branch in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *ProtectBranchArgs) (interface{}, error) {
				return c.ProtectedBranches().Protect(ctx, a.ProjectID.String(), &a.ProtectBranchOptions)
			}),
		newTool("unprotect_branch", "Remove protection from a branch", false,
			func(ctx context.Context, c gitlab.Client, a *UnprotectBranchArgs) (interface{}, error) {
				if err := c.ProtectedBranches().Unprotect(ctx, a.ProjectID.String(), a.Name); err != nil {
					return nil, err
				}

				return Text(fmt.Sprintf("Branch '%s' is no longer protected.", a.Name)), nil
			}),
	}
}
