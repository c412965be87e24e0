package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ListLabelsArgs are the arguments of list_labels.
type ListLabelsArgs struct {
	ProjectArgs
	gitlab.ListLabelsOptions
}

// CreateLabelArgs are the arguments of create_label.
type CreateLabelArgs struct {
	ProjectArgs
	gitlab.CreateLabelOptions
}

// UpdateLabelArgs are the arguments of update_label.
type UpdateLabelArgs struct {
	ProjectArgs
	gitlab.UpdateLabelOptions

	LabelID int `json:"label_id" shape:"required,min=1" desc:"The ID of the label"`
}

// ListMilestonesArgs are the arguments of list_milestones.
type ListMilestonesArgs struct {
	ProjectArgs
	gitlab.ListMilestonesOptions
}

// CreateMilestoneArgs are the arguments of create_milestone.
type CreateMilestoneArgs struct {
	ProjectArgs
	gitlab.CreateMilestoneOptions
}

// UpdateMilestoneArgs are the arguments of update_milestone.
type UpdateMilestoneArgs struct {
	ProjectArgs
	gitlab.UpdateMilestoneOptions

	MilestoneID int `json:"milestone_id" shape:"required,min=1" desc:"The ID of the milestone"`
}

func labelTools() []Tool {
	return []Tool{
		newTool("list_labels", "List labels for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListLabelsArgs) (interface{}, error) {
				return c.Labels().List(ctx, a.ProjectID.String(), &a.ListLabelsOptions)
			}),
		newTool("create_label", "Create a new label in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateLabelArgs) (interface{}, error) {
				return c.Labels().Create(ctx, a.ProjectID.String(), &a.CreateLabelOptions)
			}),
		newTool("update_label", "Update an existing label", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateLabelArgs) (interface{}, error) {
				return c.Labels().Update(ctx, a.ProjectID.String(), a.LabelID, &a.UpdateLabelOptions)
			}),
		newTool("list_milestones", "List milestones for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListMilestonesArgs) (interface{}, error) {
				return c.Milestones().List(ctx, a.ProjectID.String(), &a.ListMilestonesOptions)
			}),
		newTool("create_milestone", "Create a new milestone in a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateMilestoneArgs) (interface{}, error) {
				return c.Milestones().Create(ctx, a.ProjectID.String(), &a.CreateMilestoneOptions)
			}),
		newTool("update_milestone", "Update an existing milestone", false,
			func(ctx context.Context, c gitlab.Client, a *UpdateMilestoneArgs) (interface{}, error) {
				return c.Milestones().Update(ctx, a.ProjectID.String(), a.MilestoneID, &a.UpdateMilestoneOptions)
			}),
	}
}
