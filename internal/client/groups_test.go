package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

func TestGroupsClient_Delete(t *testing.T) {
	t.Parallel()

	fake := newFakeGitLab(t)
	fake.handle(http.MethodDelete, "/api/v4/groups/platform%2Fteam", respondJSON(http.StatusAccepted, map[string]interface{}{"message": "202 Accepted"}))

	result, err := fake.client().Groups().Delete(context.Background(), "platform/team")
	require.NoError(t, err)
	assert.Equal(t, "Group 'platform/team' has been scheduled for deletion.", result.Message)
}

func TestGroupsClient_ListSubgroups(t *testing.T) {
	t.Parallel()

	group := map[string]interface{}{"id": 4, "name": "Team", "path": "team", "visibility": "private", "web_url": "https://gitlab.example.com/groups/platform/team"}

	fake := newFakeGitLab(t)
	fake.handle(http.MethodGet, "/api/v4/groups/platform/subgroups", respondList("1", []interface{}{group}))

	result, err := fake.client().Groups().ListSubgroups(context.Background(), "platform", nil)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "team", result.Items[0].Path)
}

func TestBranchesClient_Create(t *testing.T) {
	t.Parallel()

	branch := map[string]interface{}{
		"name":      "feature",
		"protected": false,
		"commit": map[string]interface{}{
			"id":         "abc",
			"short_id":   "abc",
			"title":      "init",
			"created_at": "2024-01-01T00:00:00Z",
		},
	}

	t.Run("defaults the ref to the default branch", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodGet, appPath, respondJSON(http.StatusOK, testProject("trunk")))
		fake.handle(http.MethodPost, appPath+"/repository/branches", respondJSON(http.StatusCreated, branch))

		result, err := fake.client().Branches().Create(context.Background(), "group/app", &gitlab.CreateBranchOptions{Branch: "feature"})
		require.NoError(t, err)
		assert.Equal(t, "feature", result.Name)

		requests := fake.recorded()
		require.Len(t, requests, 2)
		assert.Equal(t, "trunk", requests[1].Body["ref"])
	})

	t.Run("explicit ref skips the lookup", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, appPath+"/repository/branches", respondJSON(http.StatusCreated, branch))

		_, err := fake.client().Branches().Create(context.Background(), "group/app", &gitlab.CreateBranchOptions{Branch: "feature", Ref: "v1"})
		require.NoError(t, err)

		requests := fake.recorded()
		require.Len(t, requests, 1)
		assert.Equal(t, "v1", requests[0].Body["ref"])
	})
}
