package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	internalhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// FilesClient implements the gitlab.FilesClient interface.
type FilesClient struct {
	httpClient *internalhttp.Client
}

// NewFilesClient creates a new FilesClient.
func NewFilesClient(httpClient *internalhttp.Client) *FilesClient {
	return &FilesClient{httpClient: httpClient}
}

func filePath(projectID, file string) string {
	return projectPath(projectID, "repository", "files", gitlab.PathSegment(file))
}

func fileSubject(projectID, file string) string {
	return "file " + file + " in project " + projectID
}

// Get reads a file at ref and returns it with its content decoded.
func (c *FilesClient) Get(ctx context.Context, projectID, file, ref string) (*gitlab.FileContent, error) {
	req := newCall(http.MethodGet, filePath(projectID, file), fileSubject(projectID, file))
	req.req.Query = url.Values{"ref": {ref}}

	content, err := fetch[gitlab.FileContent](ctx, c.httpClient, req)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(content.Encoding) {
	case "base64", "":
		decoded, err := base64.StdEncoding.DecodeString(content.Content)
		if err != nil {
			return nil, fmt.Errorf("decoding content of %s: %w", file, err)
		}

		content.Content = string(decoded)
	case "text":
	default:
		return nil, fmt.Errorf("%w %q for %s", gitlab.ErrUnexpectedContentType, content.Encoding, file)
	}

	return content, nil
}

// Exists probes a file on branch. Any failure, not only a 404, is treated
// as absent.
func (c *FilesClient) Exists(ctx context.Context, projectID, file, branch string) bool {
	_, err := c.Get(ctx, projectID, file, branch)

	return err == nil
}

// fileWriteResponse is the body of a file create or update. GitLab only
// guarantees file_path and branch, which are taken from the request instead.
type fileWriteResponse struct {
	CommitID string      `json:"commit_id,omitempty"`
	ID       interface{} `json:"id,omitempty"`
	Content  interface{} `json:"content,omitempty"`
}

// CreateOrUpdate writes a file in two steps: an existence probe, then a
// POST to create or a PUT to update.
func (c *FilesClient) CreateOrUpdate(ctx context.Context, projectID, file string, opts *gitlab.CreateOrUpdateFileOptions) (*gitlab.FileResult, error) {
	if opts == nil {
		opts = &gitlab.CreateOrUpdateFileOptions{}
	}

	method := http.MethodPost
	if c.Exists(ctx, projectID, file, opts.Branch) {
		method = http.MethodPut
	}

	written, err := fetch[fileWriteResponse](ctx, c.httpClient,
		newCall(method, filePath(projectID, file), fileSubject(projectID, file)).withBody(opts))
	if err != nil {
		return nil, err
	}

	return &gitlab.FileResult{
		FilePath: file,
		Branch:   opts.Branch,
		CommitID: written.commitID(),
		Content:  written.Content,
	}, nil
}

// commitID prefers commit_id, then id.
func (r *fileWriteResponse) commitID() string {
	if r.CommitID != "" {
		return r.CommitID
	}

	if id := cast.ToString(r.ID); id != "" {
		return id
	}

	return constants.UnknownCommitID
}

// Push writes files one after another on branch and returns the result of
// the last one. The first failure stops the push; files already written stay.
func (c *FilesClient) Push(ctx context.Context, projectID, branch, commitMessage string, files []gitlab.FileOperation) (*gitlab.FileResult, error) {
	if len(files) == 0 {
		return nil, gitlab.ErrEmptyFileList
	}

	var last *gitlab.FileResult

	for _, f := range files {
		result, err := c.CreateOrUpdate(ctx, projectID, f.Path, &gitlab.CreateOrUpdateFileOptions{
			Content:       f.Content,
			CommitMessage: commitMessage,
			Branch:        branch,
		})
		if err != nil {
			return nil, fmt.Errorf("pushing %s: %w", f.Path, err)
		}

		last = result
	}

	return last, nil
}
