package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// WikisClient implements the gitlab.WikisClient interface for both project
// and group wikis.
type WikisClient struct {
	httpClient *internalhttp.Client
}

// NewWikisClient creates a new WikisClient.
func NewWikisClient(httpClient *internalhttp.Client) *WikisClient {
	return &WikisClient{httpClient: httpClient}
}

func wikiPath(scope gitlab.WikiScope, ownerID string, rest ...string) string {
	return path(append([]string{string(scope), gitlab.PathSegment(ownerID), "wikis"}, rest...)...)
}

func wikiSubject(scope gitlab.WikiScope, ownerID string) string {
	if scope == gitlab.GroupWiki {
		return "wiki of group " + ownerID
	}

	return "wiki of project " + ownerID
}

// List lists wiki pages. GitLab does not paginate wikis, so without an
// X-Total header Count is the number of pages returned.
func (c *WikisClient) List(ctx context.Context, scope gitlab.WikiScope, ownerID string, opts *gitlab.ListWikiPagesOptions) (*gitlab.ListResponse[gitlab.WikiPage], error) {
	req, err := newCall(http.MethodGet, wikiPath(scope, ownerID), wikiSubject(scope, ownerID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	resp, err := req.send(ctx, c.httpClient)
	if err != nil {
		return nil, err
	}

	var pages []gitlab.WikiPage
	if err := decodeBody(resp, req, &pages); err != nil {
		return nil, err
	}

	result := paginate(resp, pages)
	if resp.Headers.Get(constants.TotalHeader) == "" {
		result.Count = len(result.Items)
	}

	return result, nil
}

// Get reads one wiki page.
func (c *WikisClient) Get(ctx context.Context, scope gitlab.WikiScope, ownerID, slug string, opts *gitlab.GetWikiPageOptions) (*gitlab.WikiPage, error) {
	req, err := newCall(http.MethodGet, wikiPath(scope, ownerID, gitlab.PathSegment(slug)), "wiki page "+slug+" in "+wikiSubject(scope, ownerID)).withQuery(opts)
	if err != nil {
		return nil, err
	}

	return fetch[gitlab.WikiPage](ctx, c.httpClient, req)
}

// Create adds a wiki page. Format defaults to markdown.
func (c *WikisClient) Create(ctx context.Context, scope gitlab.WikiScope, ownerID string, opts *gitlab.CreateWikiPageOptions) (*gitlab.WikiPage, error) {
	body := gitlab.CreateWikiPageOptions{}
	if opts != nil {
		body = *opts
	}

	if body.Format == "" {
		body.Format = gitlab.WikiFormatMarkdown
	}

	req := newCall(http.MethodPost, wikiPath(scope, ownerID), wikiSubject(scope, ownerID)).withBody(&body)

	return fetch[gitlab.WikiPage](ctx, c.httpClient, req)
}

// Edit changes a wiki page.
func (c *WikisClient) Edit(ctx context.Context, scope gitlab.WikiScope, ownerID, slug string, opts *gitlab.EditWikiPageOptions) (*gitlab.WikiPage, error) {
	req := newCall(http.MethodPut, wikiPath(scope, ownerID, gitlab.PathSegment(slug)), "wiki page "+slug+" in "+wikiSubject(scope, ownerID)).withBody(opts)

	return fetch[gitlab.WikiPage](ctx, c.httpClient, req)
}

// Delete removes a wiki page.
func (c *WikisClient) Delete(ctx context.Context, scope gitlab.WikiScope, ownerID, slug string) error {
	req := newCall(http.MethodDelete, wikiPath(scope, ownerID, gitlab.PathSegment(slug)), "wiki page "+slug+" in "+wikiSubject(scope, ownerID))

	_, err := req.send(ctx, c.httpClient)

	return err
}

type wikiAttachmentBody struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
	Branch   string `json:"branch,omitempty"`
}

// UploadAttachment uploads a file to the wiki repository. Content that is
// not already a data URI is sent as base64 octet-stream.
func (c *WikisClient) UploadAttachment(ctx context.Context, scope gitlab.WikiScope, ownerID string, opts *gitlab.UploadWikiAttachmentOptions) (*gitlab.WikiAttachment, error) {
	if opts == nil {
		opts = &gitlab.UploadWikiAttachmentOptions{}
	}

	body := &wikiAttachmentBody{
		FileName: fileName(opts.FilePath),
		FilePath: opts.FilePath,
		Content:  AttachmentDataURI(opts.Content),
		Branch:   opts.Branch,
	}

	req := newCall(http.MethodPost, wikiPath(scope, ownerID, "attachments"), "attachment "+opts.FilePath+" in "+wikiSubject(scope, ownerID)).withBody(body)

	return fetch[gitlab.WikiAttachment](ctx, c.httpClient, req)
}

// AttachmentDataURI encodes content as a base64 data URI unless it already
// is one.
func AttachmentDataURI(content string) string {
	if strings.HasPrefix(content, "data:") {
		return content
	}

	return constants.AttachmentDataURIPrefix + base64.StdEncoding.EncodeToString([]byte(content))
}

func fileName(filePath string) string {
	if i := strings.LastIndex(filePath, "/"); i >= 0 {
		return filePath[i+1:]
	}

	return filePath
}
