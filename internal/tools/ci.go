package tools

import (
	"context"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// ListPipelinesArgs are the arguments of list_pipelines.
type ListPipelinesArgs struct {
	ProjectArgs
	gitlab.ListPipelinesOptions
}

// TriggerPipelineArgs are the arguments of trigger_pipeline.
type TriggerPipelineArgs struct {
	ProjectArgs
	gitlab.TriggerPipelineOptions
}

// ListPipelineJobsArgs are the arguments of list_pipeline_jobs.
type ListPipelineJobsArgs struct {
	PipelineArgs
	gitlab.ListJobsOptions
}

// ListEnvironmentsArgs are the arguments of list_environments.
type ListEnvironmentsArgs struct {
	ProjectArgs
	gitlab.ListEnvironmentsOptions
}

// EnvironmentArgs are the arguments of get_environment.
type EnvironmentArgs struct {
	ProjectArgs

	EnvironmentID int `json:"environment_id" shape:"required,min=1" desc:"The ID of the environment"`
}

// ValidateCIArgs are the arguments of validate_ci_yaml.
type ValidateCIArgs struct {
	ProjectArgs
	gitlab.CILintOptions
}

func ciTools() []Tool {
	return []Tool{
		newTool("list_pipelines", "List pipelines for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListPipelinesArgs) (interface{}, error) {
				return c.Pipelines().List(ctx, a.ProjectID.String(), &a.ListPipelinesOptions)
			}),
		newTool("get_pipeline", "Get details of a specific pipeline", true,
			func(ctx context.Context, c gitlab.Client, a *PipelineArgs) (interface{}, error) {
				return c.Pipelines().Get(ctx, a.ProjectID.String(), a.PipelineID)
			}),
		newTool("trigger_pipeline", "Trigger a new pipeline for a branch or tag", false,
			func(ctx context.Context, c gitlab.Client, a *TriggerPipelineArgs) (interface{}, error) {
				return c.Pipelines().Trigger(ctx, a.ProjectID.String(), &a.TriggerPipelineOptions)
			}),
		newTool("retry_pipeline", "Retry failed jobs in a pipeline", false,
			func(ctx context.Context, c gitlab.Client, a *PipelineArgs) (interface{}, error) {
				return c.Pipelines().Retry(ctx, a.ProjectID.String(), a.PipelineID)
			}),
		newTool("cancel_pipeline", "Cancel a running pipeline", false,
			func(ctx context.Context, c gitlab.Client, a *PipelineArgs) (interface{}, error) {
				return c.Pipelines().Cancel(ctx, a.ProjectID.String(), a.PipelineID)
			}),
		newTool("list_pipeline_jobs", "List jobs for a specific pipeline", true,
			func(ctx context.Context, c gitlab.Client, a *ListPipelineJobsArgs) (interface{}, error) {
				return c.Jobs().ListForPipeline(ctx, a.ProjectID.String(), a.PipelineID, &a.ListJobsOptions)
			}),
		newTool("get_job", "Get details of a specific job", true,
			func(ctx context.Context, c gitlab.Client, a *JobArgs) (interface{}, error) {
				return c.Jobs().Get(ctx, a.ProjectID.String(), a.JobID)
			}),
		newTool("get_job_log", "Get the log/trace output of a job", true,
			func(ctx context.Context, c gitlab.Client, a *JobArgs) (interface{}, error) {
				trace, err := c.Jobs().Log(ctx, a.ProjectID.String(), a.JobID)
				if err != nil {
					return nil, err
				}

				return Text(trace), nil
			}),
		newTool("retry_job", "Retry a failed job", false,
			func(ctx context.Context, c gitlab.Client, a *JobArgs) (interface{}, error) {
				return c.Jobs().Retry(ctx, a.ProjectID.String(), a.JobID)
			}),
		newTool("cancel_job", "Cancel a running job", false,
			func(ctx context.Context, c gitlab.Client, a *JobArgs) (interface{}, error) {
				return c.Jobs().Cancel(ctx, a.ProjectID.String(), a.JobID)
			}),
		newTool("list_environments", "List environments for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListEnvironmentsArgs) (interface{}, error) {
				return c.Environments().List(ctx, a.ProjectID.String(), &a.ListEnvironmentsOptions)
			}),
		newTool("get_environment", "Get details of a specific environment", true,
			func(ctx context.Context, c gitlab.Client, a *EnvironmentArgs) (interface{}, error) {
				return c.Environments().Get(ctx, a.ProjectID.String(), a.EnvironmentID)
			}),
		newTool("validate_ci_yaml",
			"Validate GitLab CI/CD configuration. Reads .gitlab-ci.yml from the default branch when no content is given", true,
			func(ctx context.Context, c gitlab.Client, a *ValidateCIArgs) (interface{}, error) {
				return c.CILint().Lint(ctx, a.ProjectID.String(), &a.CILintOptions)
			}),
	}
}
