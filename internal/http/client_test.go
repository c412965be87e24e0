package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitlabhttp "github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, gitlabhttp.DefaultUserAgent, request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_, err := uuid.Parse(request.Header.Get(gitlab.RequestIDHeader))
			assert.NoError(t, err)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 42, "name": "app"})
		}))
		defer server.Close()

		tokenManager := &MockTokenManager{token: "test-token"}
		client := gitlabhttp.NewClient(server.URL+"/api/v4/", tokenManager)

		resp, err := client.Do(context.Background(), &gitlabhttp.Request{
			Method: "GET",
			Path:   "/projects/42",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "app", result["name"])
	})

	t.Run("escaped path segment reaches the wire", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/group%2Fsub%2Fapp/issues", request.URL.EscapedPath())
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gitlabhttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &gitlabhttp.Request{Method: http.MethodGet, Path: "/projects/"+gitlab.PathSegment("group/sub/app")+"/issues"})
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects", request.URL.Path)
			assert.Equal(t, []string{"failed", "success"}, request.URL.Query()["scope[]"])
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gitlabhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &gitlabhttp.Request{
			Method: "GET",
			Path:   "/projects",
			Query:  url.Values{"page": []string{"2"}, "scope[]": []string{"failed", "success"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "new-project", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := gitlabhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &gitlabhttp.Request{
			Method: "POST",
			Path:   "/projects",
			Body:   map[string]string{"name": "new-project"},
		})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"404 Project Not Found"}`))
		}))
		defer server.Close()

		client := gitlabhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &gitlabhttp.Request{
			Method: "GET",
			Path:   "/projects/invalid",
		})
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		respErr := &gitlab.ResponseError{}
		require.True(t, errors.As(err, &respErr))
		assert.Equal(t, "404 Project Not Found", respErr.Message)
	})

	t.Run("token failure aborts before sending", func(t *testing.T) {
		t.Parallel()

		var hits int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&hits, 1)
		}))
		defer server.Close()

		client := gitlabhttp.NewClient(server.URL, &MockTokenManager{err: gitlab.ErrTokenRequired})

		_, err := client.Do(context.Background(), &gitlabhttp.Request{Method: http.MethodGet, Path: "/user"})
		require.ErrorIs(t, err, gitlab.ErrTokenRequired)
		assert.Zero(t, atomic.LoadInt32(&hits))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "gitlab-mcp-test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := gitlabhttp.NewClient(server.URL, nil, gitlabhttp.WithUserAgent("gitlab-mcp-test"))

		resp, err := client.Do(context.Background(), &gitlabhttp.Request{
			Method: "GET",
			Path:   "/projects",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := gitlabhttp.NewClient(server.URL, &MockTokenManager{token: "secret"},
			gitlabhttp.WithLogger(logger), gitlabhttp.WithDebug(true))

		_, err := client.Do(context.Background(), &gitlabhttp.Request{Method: http.MethodGet, Path: "/projects"})
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
		assert.NotContains(t, logger.logs[0]["fields"], "secret")
	})

	t.Run("interceptors observe the round trip", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		var seen []int

		client := gitlabhttp.NewClient(server.URL, nil,
			gitlabhttp.WithRequestInterceptor(func(ctx context.Context, req *gitlab.Request) error {
				req.Headers.Set("X-Trace", "1")

				return nil
			}),
			gitlabhttp.WithResponseInterceptor(func(ctx context.Context, req *gitlab.Request, resp *gitlab.Response) error {
				assert.Equal(t, "1", req.Headers.Get("X-Trace"))
				seen = append(seen, resp.StatusCode)

				return nil
			}))

		_, err := client.Do(context.Background(), &gitlabhttp.Request{Method: http.MethodDelete, Path: "/projects/1"})
		require.Error(t, err)
		assert.Equal(t, []int{http.StatusConflict}, seen)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		body   interface{}
	}{
		{method: http.MethodGet},
		{method: http.MethodPost, body: map[string]string{"key": "value"}},
		{method: http.MethodPut, body: map[string]string{"key": "value"}},
		{method: http.MethodPatch, body: map[string]string{"key": "value"}},
		{method: http.MethodDelete},
	}

	for _, testCase := range tests {
		t.Run(testCase.method, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.body == nil {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, `{"key":"value"}`, string(body))
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := gitlabhttp.NewClient(server.URL, nil)
			resp, err := client.Do(context.Background(), &gitlabhttp.Request{
				Method: testCase.method,
				Path:   "/test",
				Body:   testCase.body,
			})
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_NeverRetries(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				atomic.AddInt32(&attempts, 1)
				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := gitlabhttp.NewClient(server.URL, nil)

			resp, err := client.Do(context.Background(), &gitlabhttp.Request{Method: http.MethodGet, Path: "/test"})
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-release:
		case <-request.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := gitlabhttp.NewClient(server.URL, nil, gitlabhttp.WithTimeout(50*time.Millisecond))

	_, err := client.Do(context.Background(), &gitlabhttp.Request{Method: http.MethodGet, Path: "/slow"})
	require.Error(t, err)

	var respErr *gitlab.ResponseError
	assert.False(t, errors.As(err, &respErr))
	assert.True(t, gitlab.IsNetwork(gitlab.MapError(err, "slow endpoint")))
}
