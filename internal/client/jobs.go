package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// JobsClient implements the gitlab.JobsClient interface.
type JobsClient struct {
	httpClient *internalhttp.Client
}

// NewJobsClient creates a new JobsClient.
func NewJobsClient(httpClient *internalhttp.Client) *JobsClient {
	return &JobsClient{httpClient: httpClient}
}

func jobPath(projectID string, jobID int, rest ...string) string {
	return projectPath(projectID, append([]string{"jobs", strconv.Itoa(jobID)}, rest...)...)
}

func jobSubject(projectID string, jobID int) string {
	return fmt.Sprintf("job %d in project %s", jobID, projectID)
}

// ListForPipeline lists the jobs of a pipeline. Scope is sent as scope[].
func (c *JobsClient) ListForPipeline(ctx context.Context, projectID string, pipelineID int, opts *gitlab.ListJobsOptions) (*gitlab.ListResponse[gitlab.Job], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "pipelines", strconv.Itoa(pipelineID), "jobs"), pipelineSubject(projectID, pipelineID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Job](ctx, c.httpClient, req)
}

// Get retrieves one job.
func (c *JobsClient) Get(ctx context.Context, projectID string, jobID int) (*gitlab.Job, error) {
	return fetch[gitlab.Job](ctx, c.httpClient, newCall(http.MethodGet, jobPath(projectID, jobID), jobSubject(projectID, jobID)))
}

// Log returns the raw trace of a job.
func (c *JobsClient) Log(ctx context.Context, projectID string, jobID int) (string, error) {
	req := newCall(http.MethodGet, jobPath(projectID, jobID, "trace"), "log of "+jobSubject(projectID, jobID))
	req.req.Headers = map[string]string{"Accept": "text/plain"}

	resp, err := req.send(ctx, c.httpClient)
	if err != nil {
		return "", err
	}

	return string(resp.Body), nil
}

// Retry retries a job.
func (c *JobsClient) Retry(ctx context.Context, projectID string, jobID int) (*gitlab.Job, error) {
	return fetch[gitlab.Job](ctx, c.httpClient, newCall(http.MethodPost, jobPath(projectID, jobID, "retry"), jobSubject(projectID, jobID)))
}

// Cancel cancels a job.
func (c *JobsClient) Cancel(ctx context.Context, projectID string, jobID int) (*gitlab.Job, error) {
	return fetch[gitlab.Job](ctx, c.httpClient, newCall(http.MethodPost, jobPath(projectID, jobID, "cancel"), jobSubject(projectID, jobID)))
}
