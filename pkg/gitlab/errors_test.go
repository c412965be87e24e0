package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"string message", 404, `{"message":"404 Project Not Found"}`, "404 Project Not Found"},
		{"field map", 400, `{"message":{"title":["can't be blank"],"branch":["is invalid"]}}`, "branch is invalid; title can't be blank"},
		{"list", 400, `{"message":["a","b"]}`, "a, b"},
		{"error description", 401, `{"error":"invalid_token","error_description":"Token was revoked"}`, "Token was revoked"},
		{"error only", 403, `{"error":"insufficient_scope"}`, "insufficient_scope"},
		{"raw body", 502, "Bad Gateway from proxy\n", "Bad Gateway from proxy"},
		{"empty body", 503, "", "503 Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status := ""
			if tt.body == "" {
				status = fmt.Sprintf("%d %s", tt.status, http.StatusText(tt.status))
			}

			respErr := ParseResponseError(tt.status, status, []byte(tt.body))
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.expected, respErr.Message)
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	subject := "project group/app"

	tests := []struct {
		status   int
		kind     ErrorKind
		sentinel error
		expected string
	}{
		{401, KindAuth, ErrUnauthorized, "authentication failed while accessing project group/app: nope"},
		{403, KindPermission, ErrForbidden, "permission denied for project group/app: nope"},
		{404, KindNotFound, ErrNotFound, "project group/app not found: nope"},
		{409, KindConflict, ErrConflict, "conflict on project group/app: nope"},
		{429, KindRateLimit, ErrRateLimited, "GitLab API rate limit exceeded while accessing project group/app"},
		{422, KindAPI, ErrAPI, "GitLab API error on project group/app (422): nope"},
		{500, KindAPI, ErrAPI, "GitLab API error on project group/app (500): nope"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			err := MapError(&ResponseError{StatusCode: tt.status, Message: "nope"}, subject)

			var mapped *Error
			require.ErrorAs(t, err, &mapped)
			assert.Equal(t, tt.kind, mapped.Kind)
			assert.Equal(t, tt.status, mapped.StatusCode)
			assert.Equal(t, tt.expected, mapped.Error())
			require.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestMapError_Overrides(t *testing.T) {
	t.Parallel()

	err := MapError(&ResponseError{StatusCode: 405, Message: "Method Not Allowed"}, "merge request !1",
		OnStatus(404, "gone"),
		OnStatus(405, "Cannot merge"),
	)
	assert.Equal(t, "Cannot merge", err.Error())
	assert.Equal(t, KindAPI, KindOf(err))

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Method Not Allowed", respErr.Message)
}

func TestMapError_Network(t *testing.T) {
	t.Parallel()

	err := MapError(errors.New("dial tcp: connection refused"), "user 1")
	assert.True(t, IsNetwork(err))
	assert.Equal(t, "network error while requesting user 1: dial tcp: connection refused", err.Error())

	err = MapError(fmt.Errorf("executing request: %w", context.DeadlineExceeded), "user 1")
	assert.True(t, IsNetwork(err))
	assert.Contains(t, err.Error(), "request for user 1 timed out")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMapError_PassesThroughMappedErrors(t *testing.T) {
	t.Parallel()

	original := &Error{Kind: KindNotFound, Message: "Issue not found"}
	wrapped := fmt.Errorf("listing notes: %w", original)

	assert.Same(t, wrapped, MapError(wrapped, "anything"))
	assert.NoError(t, MapError(nil, "anything"))
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError(
		FieldViolation{Path: "items[0].id", Expectation: "is required"},
		FieldViolation{Expectation: "expected an object"},
	)

	assert.Equal(t, "validation failed: items[0].id: is required; expected an object", err.Error())
	assert.True(t, IsValidation(err))
	assert.Len(t, err.Violations, 2)
	assert.False(t, IsNotFound(err))
}

func TestError_IsOnlyMatchesKindSentinels(t *testing.T) {
	t.Parallel()

	err := &Error{Kind: KindNotFound, StatusCode: 404, Message: "x"}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, &Error{Kind: KindNotFound, Message: "other"})
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}
