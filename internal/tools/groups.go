package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// GetUserArgs are the arguments of get_user.
type GetUserArgs struct {
	UserID int `json:"user_id" shape:"required,min=1" desc:"The ID of the user"`
}

// GetGroupArgs are the arguments of get_group.
type GetGroupArgs struct {
	GroupArgs
	gitlab.GetGroupOptions
}

// ListSubgroupsArgs are the arguments of list_group_subgroups.
type ListSubgroupsArgs struct {
	GroupArgs
	gitlab.ListGroupsOptions
}

// UpdateGroupArgs are the arguments of update_group.
type UpdateGroupArgs struct {
	GroupArgs
	gitlab.UpdateGroupOptions
}

func userTools() []Tool {
	return []Tool{
		newTool("get_current_user", "Get details of the currently authenticated user", true,
			func(ctx context.Context, c gitlab.Client, _ *NoArgs) (interface{}, error) {
				return c.Users().Current(ctx)
			}),
		newTool("list_users", "List GitLab users", true,
			func(ctx context.Context, c gitlab.Client, a *gitlab.ListUsersOptions) (interface{}, error) {
				return c.Users().List(ctx, a)
			}),
		newTool("get_user", "Get details of a specific user", true,
			func(ctx context.Context, c gitlab.Client, a *GetUserArgs) (interface{}, error) {
				return c.Users().Get(ctx, a.UserID)
			}),
	}
}

func groupTools() []Tool {
	return []Tool{
		newTool("list_groups", "List GitLab groups", true,
			func(ctx context.Context, c gitlab.Client, a *gitlab.ListGroupsOptions) (interface{}, error) {
				return c.Groups().List(ctx, a)
			}),
		newTool("get_group", "Get details of a specific group", true,
			func(ctx context.Context, c gitlab.Client, a *GetGroupArgs) (interface{}, error) {
				return c.Groups().Get(ctx, a.GroupID.String(), &a.GetGroupOptions)
			}),
		newTool("list_group_subgroups", "List subgroups of a group", true,
			func(ctx context.Context, c gitlab.Client, a *ListSubgroupsArgs) (interface{}, error) {
				return c.Groups().ListSubgroups(ctx, a.GroupID.String(), &a.ListGroupsOptions)
			}),
		newTool("create_group", "Create a new GitLab group", false,
			func(ctx context.Context, c gitlab.Client, a *gitlab.CreateGroupOptions) (interface{}, error) {
				return c.Groups().Create(ctx, a)
			}),
		newTool("update_group", "Update a GitLab group's settings", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateGroupArgs) (interface{}, error) {
				return c.Groups().Update(ctx, a.GroupID.String(), &a.UpdateGroupOptions)
			}),
		newTool("delete_group", "Delete a GitLab group", false,
			func(ctx context.Context, c gitlab.Client, a *GroupArgs) (interface{}, error) {
				result, err := c.Groups().Delete(ctx, a.GroupID.String())
				if err != nil {
					return nil, err
				}

				return Text(result.Message), nil
			}),
	}
}
