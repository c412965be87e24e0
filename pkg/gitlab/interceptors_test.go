package gitlab_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "debug:"+msg)
}

func (l *recordingLogger) Info(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "info:"+msg)
}

func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "warn:"+msg)
}

func (l *recordingLogger) Error(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "error:"+msg)
}

type observation struct {
	method  string
	status  int
	latency time.Duration
}

type recordingMetrics struct {
	observations []observation
}

func (m *recordingMetrics) ObserveRequest(method string, statusCode int, duration time.Duration) {
	m.observations = append(m.observations, observation{method, statusCode, duration})
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := gitlab.NewInterceptorChain()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *gitlab.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *gitlab.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &gitlab.Request{Method: "GET", Path: "/projects"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := gitlab.NewInterceptorChain()
	boom := errors.New("boom")
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *gitlab.Request) error {
		return boom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *gitlab.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &gitlab.Request{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := gitlab.NewInterceptorChain()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *gitlab.Request, resp *gitlab.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})
	chain.AddResponseInterceptor(func(ctx context.Context, req *gitlab.Request, resp *gitlab.Response) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&gitlab.Request{Method: "GET", Path: "/projects"},
		&gitlab.Response{StatusCode: http.StatusOK})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestAuthenticationInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("sets bearer token", func(t *testing.T) {
		t.Parallel()

		interceptor := gitlab.AuthenticationInterceptor(func(ctx context.Context) (string, error) {
			return "glpat-test", nil
		})
		req := &gitlab.Request{Method: "GET", Path: "/user"}

		require.NoError(t, interceptor(context.Background(), req))
		assert.Equal(t, "Bearer glpat-test", req.Headers.Get("Authorization"))
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		t.Parallel()

		interceptor := gitlab.AuthenticationInterceptor(func(ctx context.Context) (string, error) {
			return "", gitlab.ErrTokenRequired
		})

		err := interceptor(context.Background(), &gitlab.Request{})
		require.ErrorIs(t, err, gitlab.ErrTokenRequired)
	})
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := gitlab.RequestIDInterceptor()

	first := &gitlab.Request{}
	second := &gitlab.Request{}

	require.NoError(t, interceptor(context.Background(), first))
	require.NoError(t, interceptor(context.Background(), second))

	id := first.Headers.Get(gitlab.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, second.Headers.Get(gitlab.RequestIDHeader))

	preset := &gitlab.Request{Headers: http.Header{gitlab.RequestIDHeader: []string{"fixed"}}}
	require.NoError(t, interceptor(context.Background(), preset))
	assert.Equal(t, "fixed", preset.Headers.Get(gitlab.RequestIDHeader))
}

func TestLoggingResponseInterceptor(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	interceptor := gitlab.LoggingResponseInterceptor(logger)
	req := &gitlab.Request{Method: "GET", Path: "/projects"}

	for _, resp := range []*gitlab.Response{
		{StatusCode: http.StatusOK},
		{StatusCode: http.StatusNotFound},
		{StatusCode: http.StatusBadGateway},
		{Error: errors.New("connection refused")},
	} {
		require.NoError(t, interceptor(context.Background(), req, resp))
	}

	assert.Equal(t, []string{
		"debug:API Response",
		"warn:API Response",
		"error:API Response Error",
		"error:API Response Error",
	}, logger.entries)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	recorder := &recordingMetrics{}
	requestInterceptor := gitlab.MetricsRequestInterceptor()
	responseInterceptor := gitlab.MetricsResponseInterceptor(recorder)

	ctx := context.Background()
	req := &gitlab.Request{Method: "GET", Path: "/projects"}

	require.NoError(t, requestInterceptor(ctx, req))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, responseInterceptor(ctx, req, &gitlab.Response{StatusCode: http.StatusOK}))

	// No start time recorded: latency is zero.
	require.NoError(t, responseInterceptor(ctx, &gitlab.Request{Method: "POST"}, &gitlab.Response{StatusCode: http.StatusInternalServerError}))

	require.Len(t, recorder.observations, 2)
	assert.Equal(t, "GET", recorder.observations[0].method)
	assert.Equal(t, http.StatusOK, recorder.observations[0].status)
	assert.Positive(t, recorder.observations[0].latency)
	assert.Equal(t, http.StatusInternalServerError, recorder.observations[1].status)
	assert.Zero(t, recorder.observations[1].latency)
}
