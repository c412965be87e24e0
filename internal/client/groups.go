package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// GroupsClient implements the gitlab.GroupsClient interface.
type GroupsClient struct {
	httpClient *internalhttp.Client
}

// NewGroupsClient creates a new GroupsClient.
func NewGroupsClient(httpClient *internalhttp.Client) *GroupsClient {
	return &GroupsClient{httpClient: httpClient}
}

// List lists groups visible to the caller.
func (c *GroupsClient) List(ctx context.Context, opts *gitlab.ListGroupsOptions) (*gitlab.ListResponse[gitlab.Group], error) {
	req, err := newCall(http.MethodGet, "/groups", "groups").withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Group](ctx, c.httpClient, req)
}

// Get retrieves a group by id or full path.
func (c *GroupsClient) Get(ctx context.Context, groupID string, opts *gitlab.GetGroupOptions) (*gitlab.Group, error) {
	req, err := newCall(http.MethodGet, groupPath(groupID), "group "+groupID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetch[gitlab.Group](ctx, c.httpClient, req)
}

// ListSubgroups lists the direct subgroups of a group.
func (c *GroupsClient) ListSubgroups(ctx context.Context, groupID string, opts *gitlab.ListGroupsOptions) (*gitlab.ListResponse[gitlab.Group], error) {
	req, err := newCall(http.MethodGet, groupPath(groupID, "subgroups"), "subgroups of group "+groupID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Group](ctx, c.httpClient, req)
}

// Create creates a group, or a subgroup when ParentID is set.
func (c *GroupsClient) Create(ctx context.Context, opts *gitlab.CreateGroupOptions) (*gitlab.Group, error) {
	return fetch[gitlab.Group](ctx, c.httpClient, newCall(http.MethodPost, "/groups", "new group").withBody(opts))
}

// Update edits a group.
func (c *GroupsClient) Update(ctx context.Context, groupID string, opts *gitlab.UpdateGroupOptions) (*gitlab.Group, error) {
	return fetch[gitlab.Group](ctx, c.httpClient, newCall(http.MethodPut, groupPath(groupID), "group "+groupID).withBody(opts))
}

// Delete schedules a group for deletion. GitLab answers 202 with no
// useful body, so the result only carries a confirmation message.
func (c *GroupsClient) Delete(ctx context.Context, groupID string) (*gitlab.DeleteGroupResult, error) {
	_, err := newCall(http.MethodDelete, groupPath(groupID), "group "+groupID).send(ctx, c.httpClient)
	if err != nil {
		return nil, err
	}

	return &gitlab.DeleteGroupResult{
		Message: fmt.Sprintf("Group '%s' has been scheduled for deletion.", groupID),
	}, nil
}
