package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

func testJob(id int) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"status":     "failed",
		"stage":      "test",
		"name":       "unit",
		"ref":        "main",
		"tag":        false,
		"created_at": "2024-01-01T00:00:00Z",
		"web_url":    "https://gitlab.example.com/group/app/-/jobs/1",
	}
}

func TestPipelinesClient_List(t *testing.T) {
	t.Parallel()

	page := make([]interface{}, 0, 5)
	for i := 1; i <= 5; i++ {
		page = append(page, testPipeline(i))
	}

	fake := newFakeGitLab(t)
	fake.handle(http.MethodGet, "/api/v4/projects/group%2Fapp/pipelines", respondList("17", page))

	result, err := fake.client().Pipelines().List(context.Background(), "group/app", &gitlab.ListPipelinesOptions{
		ListOptions: gitlab.ListOptions{Page: 2, PerPage: 5},
		Status:      "success",
	})
	require.NoError(t, err)
	assert.Equal(t, 17, result.Count)
	assert.Len(t, result.Items, 5)

	query, err := url.ParseQuery(fake.recorded()[0].RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "5", query.Get("per_page"))
	assert.Equal(t, "success", query.Get("status"))
}

func TestPipelinesClient_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	pipeline := testPipeline(1)
	pipeline["status"] = "exploded"

	fake := newFakeGitLab(t)
	fake.handle(http.MethodGet, "/api/v4/projects/1/pipelines/1", respondJSON(http.StatusOK, pipeline))

	_, err := fake.client().Pipelines().Get(context.Background(), "1", 1)
	require.Error(t, err)
	assert.True(t, gitlab.IsValidation(err))
}

func TestJobsClient(t *testing.T) {
	t.Parallel()

	t.Run("scope is sent as an array", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, "/api/v4/projects/1/pipelines/3/jobs", respondList("1", []interface{}{testJob(8)}))

		result, err := fake.client().Jobs().ListForPipeline(context.Background(), "1", 3, &gitlab.ListJobsOptions{
			Scope: []string{"failed", "canceled"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)

		query, err := url.ParseQuery(fake.recorded()[0].RawQuery)
		require.NoError(t, err)
		assert.Equal(t, []string{"failed", "canceled"}, query["scope[]"])
	})

	t.Run("log is returned as text", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, "/api/v4/projects/1/jobs/8/trace", func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "text/plain", request.Header.Get("Accept"))
			writer.Header().Set("Content-Type", "text/plain")
			_, _ = writer.Write([]byte("$ make test\nok\n"))
		})

		log, err := fake.client().Jobs().Log(context.Background(), "1", 8)
		require.NoError(t, err)
		assert.Equal(t, "$ make test\nok\n", log)
	})

	t.Run("missing job", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)

		_, err := fake.client().Jobs().Retry(context.Background(), "1", 8)
		require.Error(t, err)
		assert.True(t, gitlab.IsNotFound(err))
		assert.Contains(t, err.Error(), "job 8 in project 1 not found")
	})
}
