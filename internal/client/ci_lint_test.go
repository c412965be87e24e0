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

const (
	lintPath     = "/api/v4/projects/group%2Fapp/ci/lint"
	ciFilePath   = "/api/v4/projects/group%2Fapp/repository/files/.gitlab-ci.yml"
	appPath      = "/api/v4/projects/group%2Fapp"
	storedConfig = "stages: [test]\n"
)

func ciFileBody() map[string]interface{} {
	return map[string]interface{}{
		"file_name": ".gitlab-ci.yml",
		"file_path": ".gitlab-ci.yml",
		"size":      len(storedConfig),
		"encoding":  "base64",
		"content":   base64.StdEncoding.EncodeToString([]byte(storedConfig)),
		"ref":       "develop",
		"blob_id":   "b1",
		"commit_id": "c1",
	}
}

func TestCILintClient_ContentResolution(t *testing.T) {
	t.Parallel()

	t.Run("empty content loads the CI file from the default branch", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, appPath, respondJSON(http.StatusOK, testProject("develop")))
		fake.handle(http.MethodGet, ciFilePath, respondJSON(http.StatusOK, ciFileBody()))
		fake.handle(http.MethodPost, lintPath, respondJSON(http.StatusOK, map[string]interface{}{"valid": true, "errors": []string{}, "warnings": []string{}}))

		result, err := fake.client().CILint().Lint(context.Background(), "group/app", &gitlab.CILintOptions{})
		require.NoError(t, err)
		assert.True(t, result.Valid)

		requests := fake.recorded()
		require.Len(t, requests, 3)
		assert.Equal(t, "ref=develop", requests[1].RawQuery)
		assert.Equal(t, storedConfig, requests[2].Body["content"])
	})

	t.Run("whitespace content is linted verbatim", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, lintPath, respondJSON(http.StatusOK, map[string]interface{}{"valid": false, "errors": []string{"empty"}}))

		result, err := fake.client().CILint().Lint(context.Background(), "group/app", &gitlab.CILintOptions{Content: "   "})
		require.NoError(t, err)
		assert.False(t, result.Valid)

		requests := fake.recorded()
		require.Len(t, requests, 1)
		assert.Equal(t, "   ", requests[0].Body["content"])
	})

	t.Run("missing CI file stops before linting", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, appPath, respondJSON(http.StatusOK, testProject("main")))

		_, err := fake.client().CILint().Lint(context.Background(), "group/app", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, gitlab.ErrCIConfigUnavailable)
		assert.True(t, gitlab.IsNotFound(err))

		for _, req := range fake.recorded() {
			assert.NotEqual(t, http.MethodPost, req.Method)
		}
	})

	t.Run("project without default branch", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, appPath, respondJSON(http.StatusOK, testProject("")))

		_, err := fake.client().CILint().Lint(context.Background(), "group/app", nil)
		require.ErrorIs(t, err, gitlab.ErrCIConfigUnavailable)
		require.ErrorIs(t, err, gitlab.ErrNoDefaultBranch)
	})
}

func TestCILintClient_Result(t *testing.T) {
	t.Parallel()

	merged := "stages:\n- test\n"

	tests := []struct {
		name     string
		opts     *gitlab.CILintOptions
		response map[string]interface{}
		want     gitlab.CILintResult
		noMerged bool
	}{
		{
			name:     "legacy status valid",
			opts:     &gitlab.CILintOptions{Content: "x", IncludeMergedYAML: gitlab.Bool(false)},
			response: map[string]interface{}{"status": "valid", "errors": []string{}, "warnings": []string{}},
			want:     gitlab.CILintResult{Valid: true, Errors: []string{}, Warnings: []string{}},
			noMerged: true,
		},
		{
			name:     "legacy status invalid",
			opts:     &gitlab.CILintOptions{Content: "x", IncludeMergedYAML: gitlab.Bool(false)},
			response: map[string]interface{}{"status": "invalid", "errors": []string{"jobs config should contain at least one visible job"}},
			want:     gitlab.CILintResult{Valid: false, Errors: []string{"jobs config should contain at least one visible job"}, Warnings: []string{}},
			noMerged: true,
		},
		{
			name:     "valid flag with errors is invalid",
			opts:     &gitlab.CILintOptions{Content: "x", IncludeMergedYAML: gitlab.Bool(false)},
			response: map[string]interface{}{"valid": true, "errors": []string{"boom"}},
			want:     gitlab.CILintResult{Valid: false, Errors: []string{"boom"}, Warnings: []string{}},
			noMerged: true,
		},
		{
			name: "merged yaml and includes by default",
			opts: &gitlab.CILintOptions{Content: "x"},
			response: map[string]interface{}{
				"valid":       true,
				"errors":      []string{},
				"warnings":    []string{"deprecated keyword"},
				"merged_yaml": merged,
				"includes": []interface{}{
					map[string]interface{}{"location": "templates/build.yml", "type": "local"},
					"remote.yml",
				},
			},
			want: gitlab.CILintResult{
				Valid:      true,
				Errors:     []string{},
				Warnings:   []string{"deprecated keyword"},
				MergedYAML: &merged,
				Includes:   &[]string{"templates/build.yml", "remote.yml"},
			},
		},
		{
			name: "empty includes kept with merged yaml",
			opts: &gitlab.CILintOptions{Content: "x"},
			response: map[string]interface{}{
				"status":      "valid",
				"errors":      []string{},
				"warnings":    []string{},
				"merged_yaml": merged,
				"includes":    []interface{}{},
			},
			want: gitlab.CILintResult{
				Valid:      true,
				Errors:     []string{},
				Warnings:   []string{},
				MergedYAML: &merged,
				Includes:   &[]string{},
			},
		},
		{
			name: "merged yaml dropped when not requested",
			opts: &gitlab.CILintOptions{Content: "x", IncludeMergedYAML: gitlab.Bool(false)},
			response: map[string]interface{}{
				"valid":       true,
				"merged_yaml": merged,
				"includes":    []interface{}{"remote.yml"},
			},
			want:     gitlab.CILintResult{Valid: true, Errors: []string{}, Warnings: []string{}},
			noMerged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := newFakeGitLab(t)
			fake.handle(http.MethodPost, lintPath, respondJSON(http.StatusOK, tt.response))

			result, err := fake.client().CILint().Lint(context.Background(), "group/app", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *result)
			assert.Equal(t, !tt.noMerged, fake.recorded()[0].Body["include_merged_yaml"])
		})
	}
}

func TestCILintClient_APIError(t *testing.T) {
	t.Parallel()

	fake := newFakeGitLab(t)
	fake.handle(http.MethodPost, lintPath, respondJSON(http.StatusForbidden, map[string]interface{}{"message": "403 Forbidden"}))

	_, err := fake.client().CILint().Lint(context.Background(), "group/app", &gitlab.CILintOptions{Content: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GitLab CI lint API error: ")
	assert.True(t, gitlab.IsForbidden(err))
}
