package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ForkRepositoryArgs are the arguments of fork_repository.
type ForkRepositoryArgs struct {
	ProjectArgs
	gitlab.ForkProjectOptions
}

// GetProjectArgs are the arguments of get_project.
type GetProjectArgs struct {
	ProjectArgs
	gitlab.GetProjectOptions
}

// UpdateProjectArgs are the arguments of update_project.
type UpdateProjectArgs struct {
	ProjectArgs
	gitlab.UpdateProjectOptions
}

// ListGroupProjectsArgs are the arguments of list_group_projects.
type ListGroupProjectsArgs struct {
	GroupArgs
	gitlab.ListGroupProjectsOptions
}

// ProjectEventsArgs are the arguments of get_project_events.
type ProjectEventsArgs struct {
	ProjectArgs
	gitlab.ListEventsOptions
}

// ProjectMembersArgs are the arguments of list_project_members.
type ProjectMembersArgs struct {
	ProjectArgs
	gitlab.ListMembersOptions
}

// GroupMembersArgs are the arguments of list_group_members.
type GroupMembersArgs struct {
	GroupArgs
	gitlab.ListMembersOptions
}

func projectTools() []Tool {
	return []Tool{
		newTool("search_repositories", "Search for GitLab projects", true,
			func(ctx context.Context, c gitlab.Client, a *gitlab.SearchProjectsOptions) (interface{}, error) {
				return c.Projects().Search(ctx, a)
			}),
		newTool("create_repository", "Create a new GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *gitlab.CreateProjectOptions) (interface{}, error) {
				return c.Projects().Create(ctx, a)
			}),
		newTool("fork_repository", "Fork a GitLab project to your account or specified namespace", false,
			func(ctx context.Context, c gitlab.Client, a *ForkRepositoryArgs) (interface{}, error) {
				return c.Projects().Fork(ctx, a.ProjectID.String(), &a.ForkProjectOptions)
			}),
		newTool("get_project", "Get details of a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *GetProjectArgs) (interface{}, error) {
				return c.Projects().Get(ctx, a.ProjectID.String(), &a.GetProjectOptions)
			}),
		newTool("update_project", "Update a GitLab project's settings", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateProjectArgs) (interface{}, error) {
				return c.Projects().Update(ctx, a.ProjectID.String(), &a.UpdateProjectOptions)
			}),
		newTool("list_group_projects", "List all projects (repositories) within a specific GitLab group", true,
			func(ctx context.Context, c gitlab.Client, a *ListGroupProjectsArgs) (interface{}, error) {
				return c.Projects().ListForGroup(ctx, a.GroupID.String(), &a.ListGroupProjectsOptions)
			}),
		newTool("get_project_events", "Get recent events/activities for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ProjectEventsArgs) (interface{}, error) {
				return c.Events().ListForProject(ctx, a.ProjectID.String(), &a.ListEventsOptions)
			}),
		newTool("list_project_members", "List all members of a GitLab project (including inherited members)", true,
			func(ctx context.Context, c gitlab.Client, a *ProjectMembersArgs) (interface{}, error) {
				return c.Members().ListForProject(ctx, a.ProjectID.String(), &a.ListMembersOptions)
			}),
		newTool("list_group_members", "List all members of a GitLab group (including inherited members)", true,
			func(ctx context.Context, c gitlab.Client, a *GroupMembersArgs) (interface{}, error) {
				return c.Members().ListForGroup(ctx, a.GroupID.String(), &a.ListMembersOptions)
			}),
	}
}
