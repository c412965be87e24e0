package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/spf13/cast"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/internal/validate"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// call is one API request together with the label used in its error
// messages and any per-status rewording.
type call struct {
	req       *http.Request
	subject   string
	overrides []gitlab.StatusOverride
}

func newCall(method, path, subject string) *call {
	return &call{
		req:     &http.Request{Method: method, Path: path},
		subject: subject,
	}
}

func (c *call) withQuery(opts interface{}) (*call, error) {
	values, err := queryValues(opts)
	if err != nil {
		return nil, err
	}

	c.req.Query = values

	return c, nil
}

func (c *call) withBody(body interface{}) *call {
	c.req.Body = body

	return c
}

func (c *call) on(statusCode int, message string) *call {
	c.overrides = append(c.overrides, gitlab.OnStatus(statusCode, message))

	return c
}

// send performs the call and maps any failure into a *gitlab.Error.
func (c *call) send(ctx context.Context, httpClient *http.Client) (*http.Response, error) {
	resp, err := httpClient.Do(ctx, c.req)
	if err != nil {
		return nil, gitlab.MapError(err, c.subject, c.overrides...)
	}

	return resp, nil
}

// fetch performs c and decodes the body into a validated T.
func fetch[T any](ctx context.Context, httpClient *http.Client, c *call) (*T, error) {
	resp, err := c.send(ctx, httpClient)
	if err != nil {
		return nil, err
	}

	var out T
	if err := decodeBody(resp, c, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// fetchList performs c, validates every item and applies the X-Total rule.
func fetchList[T any](ctx context.Context, httpClient *http.Client, c *call) (*gitlab.ListResponse[T], error) {
	resp, err := c.send(ctx, httpClient)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := decodeBody(resp, c, &items); err != nil {
		return nil, err
	}

	return paginate(resp, items), nil
}

// decodeBody checks the response body against the shape of out.
func decodeBody(resp *http.Response, c *call, out interface{}) error {
	err := validate.Decode(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing %s response: %w", c.subject, err)
	}

	return nil
}

// paginate wraps items with the total reported in X-Total. A missing or
// non-numeric header counts as zero.
func paginate[T any](resp *http.Response, items []T) *gitlab.ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	total, err := cast.ToIntE(strings.TrimSpace(resp.Headers.Get(constants.TotalHeader)))
	if err != nil {
		total = 0
	}

	return &gitlab.ListResponse[T]{
		Count: total,
		Items: items,
	}
}

// queryValues encodes the url-tagged fields of opts. Nil and zero-valued
// omitempty fields are left out.
func queryValues(opts interface{}) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}

	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}

	if len(values) == 0 {
		return nil, nil
	}

	return values, nil
}

// path joins fixed and already escaped segments with "/".
func path(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}

func projectPath(projectID string, rest ...string) string {
	return path(append([]string{"projects", gitlab.PathSegment(projectID)}, rest...)...)
}

func groupPath(groupID string, rest ...string) string {
	return path(append([]string{"groups", gitlab.PathSegment(groupID)}, rest...)...)
}

func projectSubject(projectID string) string {
	return "project " + projectID
}

func issueSubject(projectID string, issueIID int) string {
	return fmt.Sprintf("issue #%d in project %s", issueIID, projectID)
}

func mergeRequestSubject(projectID string, mrIID int) string {
	return fmt.Sprintf("merge request !%d in project %s", mrIID, projectID)
}
