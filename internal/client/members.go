package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// MembersClient implements the gitlab.MembersClient interface. Both lists
// include inherited members.
type MembersClient struct {
	httpClient *internalhttp.Client
}

// NewMembersClient creates a new MembersClient.
func NewMembersClient(httpClient *internalhttp.Client) *MembersClient {
	return &MembersClient{httpClient: httpClient}
}

// ListForProject lists the members of a project.
func (c *MembersClient) ListForProject(ctx context.Context, projectID string, opts *gitlab.ListMembersOptions) (*gitlab.ListResponse[gitlab.Member], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "members", "all"), "members of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Member](ctx, c.httpClient, req)
}

// ListForGroup lists the members of a group.
func (c *MembersClient) ListForGroup(ctx context.Context, groupID string, opts *gitlab.ListMembersOptions) (*gitlab.ListResponse[gitlab.Member], error) {
	req, err := newCall(http.MethodGet, groupPath(groupID, "members", "all"), "members of group "+groupID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Member](ctx, c.httpClient, req)
}

// EventsClient implements the gitlab.EventsClient interface.
type EventsClient struct {
	httpClient *internalhttp.Client
}

// NewEventsClient creates a new EventsClient.
func NewEventsClient(httpClient *internalhttp.Client) *EventsClient {
	return &EventsClient{httpClient: httpClient}
}

// ListForProject lists the activity feed of a project.
func (c *EventsClient) ListForProject(ctx context.Context, projectID string, opts *gitlab.ListEventsOptions) (*gitlab.ListResponse[gitlab.Event], error) {
	req, err := newCall(http.MethodGet, projectPath(projectID, "events"), "events of project "+projectID).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetchList[gitlab.Event](ctx, c.httpClient, req)
}
