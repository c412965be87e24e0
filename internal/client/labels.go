package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// LabelsClient implements the gitlab.LabelsClient interface.
type LabelsClient struct {
	httpClient *internalhttp.Client
}

// NewLabelsClient creates a new LabelsClient.
func NewLabelsClient(httpClient *internalhttp.Client) *LabelsClient {
	return &LabelsClient{httpClient: httpClient}
}

// List lists project labels.
func (c *LabelsClient) List(ctx context.Context, projectID string, opts *gitlab.ListLabelsOptions) (*gitlab.ListResponse[gitlab.Label], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "labels"), "labels of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Label](ctx, c.httpClient, req)
}

// Create creates a project label.
func (c *LabelsClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateLabelOptions) (*gitlab.Label, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "labels"), "label in project "+projectID).withBody(opts)

	return fetch[gitlab.Label](ctx, c.httpClient, req)
}

// Update edits a project label.
func (c *LabelsClient) Update(ctx context.Context, projectID string, labelID int, opts *gitlab.UpdateLabelOptions) (*gitlab.Label, error) {
	req := newCall(http.MethodPut, projectPath(projectID, "labels", strconv.Itoa(labelID)), fmt.Sprintf("label %d in project %s", labelID, projectID)).withBody(opts)

	return fetch[gitlab.Label](ctx, c.httpClient, req)
}

// MilestonesClient implements the gitlab.MilestonesClient interface.
type MilestonesClient struct {
	httpClient *internalhttp.Client
}

// NewMilestonesClient creates a new MilestonesClient.
func NewMilestonesClient(httpClient *internalhttp.Client) *MilestonesClient {
	return &MilestonesClient{httpClient: httpClient}
}

// List lists project milestones. IIDs are sent as iids[].
func (c *MilestonesClient) List(ctx context.Context, projectID string, opts *gitlab.ListMilestonesOptions) (*gitlab.ListResponse[gitlab.Milestone], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "milestones"), "milestones of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Milestone](ctx, c.httpClient, req)
}

// Create creates a milestone.
func (c *MilestonesClient) Create(ctx context.Context, projectID string, opts *gitlab.CreateMilestoneOptions) (*gitlab.Milestone, error) {
	req := newCall(http.MethodPost, projectPath(projectID, "milestones"), "milestone in project "+projectID).withBody(opts)

	return fetch[gitlab.Milestone](ctx, c.httpClient, req)
}

// Update edits a milestone.
func (c *MilestonesClient) Update(ctx context.Context, projectID string, milestoneID int, opts *gitlab.UpdateMilestoneOptions) (*gitlab.Milestone, error) {
	req := newCall(http.MethodPut, projectPath(projectID, "milestones", strconv.Itoa(milestoneID)), fmt.Sprintf("milestone %d in project %s", milestoneID, projectID)).withBody(opts)

	return fetch[gitlab.Milestone](ctx, c.httpClient, req)
}
