package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

const readmePath = "/api/v4/projects/group%2Fapp/repository/files/docs%2FREADME.md"

func fileBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"file_name": "README.md",
		"file_path": "docs/README.md",
		"size":      len(content),
		"encoding":  "base64",
		"content":   base64.StdEncoding.EncodeToString([]byte(content)),
		"ref":       "main",
		"blob_id":   "b1",
		"commit_id": "c1",
	}
}

func TestFilesClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("decodes base64 content", func(t *testing.T) {
		t.Parallel()

		original := "# Title\n\nünïcode and binary-ish \x01 bytes\n"

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, readmePath, respondJSON(http.StatusOK, fileBody(original)))

		file, err := fake.client().Files().Get(context.Background(), "group/app", "docs/README.md", "main")
		require.NoError(t, err)
		assert.Equal(t, original, file.Content)

		reqs := fake.recorded()
		require.Len(t, reqs, 1)
		assert.Equal(t, readmePath, reqs[0].RawPath)
		assert.Equal(t, "ref=main", reqs[0].RawQuery)
	})

	t.Run("rejects malformed base64", func(t *testing.T) {
		t.Parallel()

		body := fileBody("")
		body["content"] = "%%%not-base64"

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, readmePath, respondJSON(http.StatusOK, body))

		_, err := fake.client().Files().Get(context.Background(), "group/app", "docs/README.md", "main")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding content of docs/README.md")
	})
}

func TestFilesClient_Exists(t *testing.T) {
	t.Parallel()

	fake := newFakeGitLab(t)
	fake.handle(http.MethodGet, readmePath, respondJSON(http.StatusOK, fileBody("x")))
	fake.handle(http.MethodGet, "/api/v4/projects/group%2Fapp/repository/files/broken", respondJSON(http.StatusInternalServerError, nil))

	files := fake.client().Files()

	assert.True(t, files.Exists(context.Background(), "group/app", "docs/README.md", "main"))
	assert.False(t, files.Exists(context.Background(), "group/app", "missing.md", "main"))
	assert.False(t, files.Exists(context.Background(), "group/app", "broken", "main"))
}

func TestFilesClient_CreateOrUpdate(t *testing.T) {
	t.Parallel()

	opts := &gitlab.CreateOrUpdateFileOptions{
		Content:       "hello",
		CommitMessage: "docs: update readme",
		Branch:        "main",
	}

	t.Run("creates a missing file", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, readmePath, respondJSON(http.StatusCreated, map[string]interface{}{
			"file_path": "docs/README.md",
			"branch":    "main",
		}))

		result, err := fake.client().Files().CreateOrUpdate(context.Background(), "group/app", "docs/README.md", opts)
		require.NoError(t, err)
		assert.Equal(t, "docs/README.md", result.FilePath)
		assert.Equal(t, "main", result.Branch)
		assert.Equal(t, "unknown", result.CommitID)

		reqs := fake.recorded()
		require.Len(t, reqs, 2)
		assert.Equal(t, http.MethodGet, reqs[0].Method)
		assert.Equal(t, http.MethodPost, reqs[1].Method)
		assert.Equal(t, "hello", reqs[1].Body["content"])
		assert.Equal(t, "docs: update readme", reqs[1].Body["commit_message"])
		assert.Equal(t, "main", reqs[1].Body["branch"])
		assert.NotContains(t, reqs[1].Body, "previous_path")
	})

	t.Run("updates an existing file", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, readmePath, respondJSON(http.StatusOK, fileBody("old")))
		fake.handle(http.MethodPut, readmePath, respondJSON(http.StatusOK, map[string]interface{}{
			"file_path": "docs/README.md",
			"branch":    "main",
			"commit_id": "deadbeef",
		}))

		result, err := fake.client().Files().CreateOrUpdate(context.Background(), "group/app", "docs/README.md", opts)
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", result.CommitID)

		reqs := fake.recorded()
		require.Len(t, reqs, 2)
		assert.Equal(t, http.MethodPut, reqs[1].Method)
	})

	t.Run("falls back to id", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, readmePath, respondJSON(http.StatusCreated, map[string]interface{}{
			"id":      "cafe",
			"content": "hello",
		}))

		result, err := fake.client().Files().CreateOrUpdate(context.Background(), "group/app", "docs/README.md", opts)
		require.NoError(t, err)
		assert.Equal(t, "cafe", result.CommitID)
		assert.Equal(t, "hello", result.Content)
	})

	t.Run("checks the write response", func(t *testing.T) {
		t.Parallel()

		for _, body := range []interface{}{
			[]interface{}{"docs/README.md"},
			map[string]interface{}{"commit_id": 42},
		} {
			fake := newFakeGitLab(t)
			fake.handle(http.MethodPost, readmePath, respondJSON(http.StatusCreated, body))

			_, err := fake.client().Files().CreateOrUpdate(context.Background(), "group/app", "docs/README.md", opts)
			require.Error(t, err)
			assert.Equal(t, gitlab.KindValidation, gitlab.KindOf(err))
		}
	})

	t.Run("numeric id", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, readmePath, respondJSON(http.StatusCreated, map[string]interface{}{"id": 42}))

		result, err := fake.client().Files().CreateOrUpdate(context.Background(), "group/app", "docs/README.md", opts)
		require.NoError(t, err)
		assert.Equal(t, "42", result.CommitID)
	})

	t.Run("maps write failures", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, readmePath, respondJSON(http.StatusBadRequest, map[string]interface{}{
			"message": "A file with this name already exists",
		}))

		_, err := fake.client().Files().CreateOrUpdate(context.Background(), "group/app", "docs/README.md", opts)
		require.Error(t, err)
		assert.Equal(t, gitlab.KindAPI, gitlab.KindOf(err))
		assert.Contains(t, err.Error(), "A file with this name already exists")
	})
}

func TestFilesClient_Push(t *testing.T) {
	t.Parallel()

	t.Run("writes files in order and returns the last result", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, "/api/v4/projects/1/repository/files/a.txt", respondJSON(http.StatusCreated, map[string]interface{}{"commit_id": "c-a"}))
		fake.handle(http.MethodPost, "/api/v4/projects/1/repository/files/b.txt", respondJSON(http.StatusCreated, map[string]interface{}{"commit_id": "c-b"}))

		result, err := fake.client().Files().Push(context.Background(), "1", "main", "add files", []gitlab.FileOperation{
			{Path: "a.txt", Content: "a"},
			{Path: "b.txt", Content: "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, "b.txt", result.FilePath)
		assert.Equal(t, "c-b", result.CommitID)

		var writes []string

		for _, req := range fake.recorded() {
			if req.Method == http.MethodPost {
				writes = append(writes, req.Path)
				assert.Equal(t, "add files", req.Body["commit_message"])
			}
		}

		assert.Equal(t, []string{"/api/v4/projects/1/repository/files/a.txt", "/api/v4/projects/1/repository/files/b.txt"}, writes)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, "/api/v4/projects/1/repository/files/a.txt", respondJSON(http.StatusForbidden, map[string]interface{}{"message": "protected"}))

		_, err := fake.client().Files().Push(context.Background(), "1", "main", "add files", []gitlab.FileOperation{
			{Path: "a.txt", Content: "a"},
			{Path: "b.txt", Content: "b"},
		})
		require.Error(t, err)
		assert.True(t, gitlab.IsForbidden(err))
		assert.Contains(t, err.Error(), "pushing a.txt")

		for _, req := range fake.recorded() {
			assert.NotContains(t, req.Path, "b.txt")
		}
	})

	t.Run("requires files", func(t *testing.T) {
		t.Parallel()

		_, err := newFakeGitLab(t).client().Files().Push(context.Background(), "1", "main", "msg", nil)
		require.ErrorIs(t, err, gitlab.ErrEmptyFileList)
	})
}
