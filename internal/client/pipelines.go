package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// PipelinesClient implements the gitlab.PipelinesClient interface.
type PipelinesClient struct {
	httpClient *internalhttp.Client
}

// NewPipelinesClient creates a new PipelinesClient.
func NewPipelinesClient(httpClient *internalhttp.Client) *PipelinesClient {
	return &PipelinesClient{httpClient: httpClient}
}

func pipelineSubject(projectID string, pipelineID int) string {
	return fmt.Sprintf("pipeline %d in project %s", pipelineID, projectID)
}

// List lists project pipelines.
func (c *PipelinesClient) List(ctx context.Context, projectID string, opts *gitlab.ListPipelinesOptions) (*gitlab.ListResponse[gitlab.Pipeline], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "pipelines"), "pipelines of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Pipeline](ctx, c.httpClient, req)
}

// Get retrieves one pipeline.
func (c *PipelinesClient) Get(ctx context.Context, projectID string, pipelineID int) (*gitlab.Pipeline, error) {
	req := newCall(http.MethodGet, projectPath(projectID, "pipelines", strconv.Itoa(pipelineID)), pipelineSubject(projectID, pipelineID))

	return fetch[gitlab.Pipeline](ctx, c.httpClient, req)
}

// Trigger runs a new pipeline for a ref.
func (c *PipelinesClient) Trigger(ctx context.Context, projectID string, opts *gitlab.TriggerPipelineOptions) (*gitlab.Pipeline, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "pipeline"), "new pipeline in project "+projectID).withBody(opts)

	return fetch[gitlab.Pipeline](ctx, c.httpClient, req)
}

// Retry retries the failed jobs of a pipeline.
func (c *PipelinesClient) Retry(ctx context.Context, projectID string, pipelineID int) (*gitlab.Pipeline, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "pipelines", strconv.Itoa(pipelineID), "retry"), pipelineSubject(projectID, pipelineID))

	return fetch[gitlab.Pipeline](ctx, c.httpClient, req)
}

// Cancel cancels the running jobs of a pipeline.
func (c *PipelinesClient) Cancel(ctx context.Context, projectID string, pipelineID int) (*gitlab.Pipeline, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "pipelines", strconv.Itoa(pipelineID), "cancel"), pipelineSubject(projectID, pipelineID))

	return fetch[gitlab.Pipeline](ctx, c.httpClient, req)
}

// EnvironmentsClient implements the gitlab.EnvironmentsClient interface.
type EnvironmentsClient struct {
	httpClient *internalhttp.Client
}

// NewEnvironmentsClient creates a new EnvironmentsClient.
func NewEnvironmentsClient(httpClient *internalhttp.Client) *EnvironmentsClient {
	return &EnvironmentsClient{httpClient: httpClient}
}

// List lists project environments.
func (c *EnvironmentsClient) List(ctx context.Context, projectID string, opts *gitlab.ListEnvironmentsOptions) (*gitlab.ListResponse[gitlab.Environment], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "environments"), "environments of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Environment](ctx, c.httpClient, req)
}

// Get retrieves one environment with its last deployment.
func (c *EnvironmentsClient) Get(ctx context.Context, projectID string, environmentID int) (*gitlab.Environment, error) {
	req := newCall(http.MethodGet, projectPath(projectID, "environments", strconv.Itoa(environmentID)), fmt.Sprintf("environment %d in project %s", environmentID, projectID))

	return fetch[gitlab.Environment](ctx, c.httpClient, req)
}
