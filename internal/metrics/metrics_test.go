package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRequest(http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodPost, 0, time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "error")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestRecordToolCall(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordToolCall("list_issues", OutcomeSuccess, time.Millisecond)
	m.RecordToolCall("list_issues", OutcomeError, time.Millisecond)
	m.RecordToolCall("create_issue", OutcomeDenied, 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.toolCalls.WithLabelValues("list_issues", OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.toolCalls.WithLabelValues("create_issue", OutcomeDenied)), 0)
	assert.Equal(t, 3, testutil.CollectAndCount(m.toolCalls))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordToolCall("get_project", OutcomeSuccess, time.Millisecond)

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL) //nolint:noctx // test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gitlab_mcp_tool_calls_total{outcome="success",tool="get_project"} 1`)
}
