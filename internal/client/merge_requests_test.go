package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

const mrPath = "/api/v4/projects/group%2Fapp/merge_requests/5"

func TestMergeRequestsClient_Merge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   string
	}{
		{"not mergeable", http.StatusMethodNotAllowed, "Cannot merge: The merge request is in a state that cannot be merged (draft, closed, or pipeline pending)"},
		{"conflicts", http.StatusNotAcceptable, "Cannot merge: There are conflicts between source and target branches"},
		{"sha mismatch", http.StatusConflict, "SHA mismatch: The source branch has been updated since the SHA was provided"},
		{"not found", http.StatusNotFound, "Merge request not found: Project ID group/app, MR IID 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := newFakeGitLab(t)
			fake.handle(http.MethodPut, mrPath+"/merge", respondJSON(tt.status, map[string]interface{}{"message": "nope"}))

			_, err := fake.client().MergeRequests().Merge(context.Background(), "group/app", 5, nil)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}

	t.Run("sends merge options", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPut, mrPath+"/merge", respondJSON(http.StatusOK, testMergeRequest(5)))

		mr, err := fake.client().MergeRequests().Merge(context.Background(), "group/app", 5, &gitlab.MergeOptions{
			Squash: gitlab.Bool(true),
			SHA:    "abc",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, mr.IID)
		assert.Empty(t, mr.Assignees)
		assert.NotNil(t, mr.Assignees)

		body := fake.recorded()[0].Body
		assert.Equal(t, true, body["squash"])
		assert.Equal(t, "abc", body["sha"])
		assert.NotContains(t, body, "merge_when_pipeline_succeeds")
	})
}

func TestMergeRequestsClient_AutoMerge(t *testing.T) {
	t.Parallel()

	t.Run("set", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPut, mrPath+"/merge", respondJSON(http.StatusOK, testMergeRequest(5)))

		_, err := fake.client().MergeRequests().SetAutoMerge(context.Background(), "group/app", 5, &gitlab.MergeOptions{
			ShouldRemoveSourceBranch: gitlab.Bool(true),
		})
		require.NoError(t, err)

		body := fake.recorded()[0].Body
		assert.Equal(t, true, body["merge_when_pipeline_succeeds"])
		assert.Equal(t, true, body["should_remove_source_branch"])
	})

	t.Run("cancel when not set", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, mrPath+"/cancel_merge_when_pipeline_succeeds", respondJSON(http.StatusNotAcceptable, nil))

		_, err := fake.client().MergeRequests().CancelAutoMerge(context.Background(), "group/app", 5)
		require.Error(t, err)
		assert.Equal(t, "Cannot cancel auto-merge: The merge request is not set to auto-merge", err.Error())
		assert.Equal(t, gitlab.KindAPI, gitlab.KindOf(err))
	})
}

func TestMergeRequestsClient_Approve(t *testing.T) {
	t.Parallel()

	t.Run("without sha sends no body", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, mrPath+"/approve", respondJSON(http.StatusCreated, testMergeRequest(5)))

		_, err := fake.client().MergeRequests().Approve(context.Background(), "group/app", 5, nil)
		require.NoError(t, err)
		assert.False(t, fake.recorded()[0].HasBody)
	})

	t.Run("with sha", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, mrPath+"/approve", respondJSON(http.StatusCreated, testMergeRequest(5)))

		_, err := fake.client().MergeRequests().Approve(context.Background(), "group/app", 5, &gitlab.ApproveMergeRequestOptions{SHA: "abc"})
		require.NoError(t, err)
		assert.Equal(t, "abc", fake.recorded()[0].Body["sha"])
	})

	t.Run("unauthorized wording", func(t *testing.T) {
		t.Parallel()

		fake := newFakeGitLab(t)
		fake.handle(http.MethodPost, mrPath+"/approve", respondJSON(http.StatusUnauthorized, nil))

		_, err := fake.client().MergeRequests().Approve(context.Background(), "group/app", 5, nil)
		require.Error(t, err)
		assert.True(t, gitlab.IsUnauthorized(err))
		assert.Equal(t, "Unauthorized: You don't have permission to approve this merge request", err.Error())
	})
}

func TestMergeRequestsClient_UpdateNote(t *testing.T) {
	t.Parallel()

	fake := newFakeGitLab(t)

	_, err := fake.client().MergeRequests().UpdateNote(context.Background(), "group/app", 5, 77, &gitlab.UpdateNoteOptions{Body: "edit"})
	require.Error(t, err)
	assert.Equal(t, "Note not found: Project ID group/app, MR IID 5, Note ID 77", err.Error())
	assert.Equal(t, mrPath+"/notes/77", fake.recorded()[0].RawPath)
}

func TestMergeRequestsClient_Rebase(t *testing.T) {
	t.Parallel()

	fake := newFakeGitLab(t)
	fake.handle(http.MethodPut, mrPath+"/rebase", respondJSON(http.StatusAccepted, map[string]interface{}{"rebase_in_progress": true}))

	result, err := fake.client().MergeRequests().Rebase(context.Background(), "group/app", 5, &gitlab.RebaseOptions{SkipCI: gitlab.Bool(true)})
	require.NoError(t, err)
	assert.True(t, result.RebaseInProgress)
	assert.Equal(t, true, fake.recorded()[0].Body["skip_ci"])
}
