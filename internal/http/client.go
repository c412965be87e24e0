// Package http is the transport used by every resource client: one request,
// one response, no retries.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// DefaultUserAgent is sent unless WithUserAgent overrides it.
const DefaultUserAgent = "gitlab-mcp-go/1.0"

// TokenManager supplies the bearer token for each request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Request is a single API call. Path is relative to the base URL and must
// already have its dynamic segments escaped.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of a call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends requests to the GitLab API.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager TokenManager
	interceptors *gitlab.InterceptorChain
	userAgent    string
	logger       gitlab.Logger
	debug        bool
	timeout      time.Duration

	extraRequest  []gitlab.RequestInterceptor
	extraResponse []gitlab.ResponseInterceptor
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and transport errors.
func WithLogger(logger gitlab.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRequestInterceptor appends a request interceptor. It runs after the
// request id and authentication interceptors.
func WithRequestInterceptor(interceptor gitlab.RequestInterceptor) Option {
	return func(c *Client) {
		c.extraRequest = append(c.extraRequest, interceptor)
	}
}

// WithResponseInterceptor appends a response interceptor.
func WithResponseInterceptor(interceptor gitlab.ResponseInterceptor) Option {
	return func(c *Client) {
		c.extraResponse = append(c.extraResponse, interceptor)
	}
}

// NewClient creates a client for baseURL. tokenManager may be nil for
// unauthenticated calls.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		userAgent:    DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.interceptors = gitlab.NewInterceptorChain()
	client.interceptors.AddRequestInterceptor(gitlab.RequestIDInterceptor())

	if tokenManager != nil {
		client.interceptors.AddRequestInterceptor(gitlab.AuthenticationInterceptor(tokenManager.GetToken))
	}

	for _, interceptor := range client.extraRequest {
		client.interceptors.AddRequestInterceptor(interceptor)
	}

	for _, interceptor := range client.extraResponse {
		client.interceptors.AddResponseInterceptor(interceptor)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

func (c *Client) newRetryableClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = c.timeout
	retryClient.Logger = nil

	if c.logger != nil {
		retryClient.Logger = &leveledLogger{logger: c.logger}
	}

	if c.debug && c.logger != nil {
		retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			c.logger.Debug("HTTP Request", map[string]interface{}{
				"method":     req.Method,
				"url":        req.URL.Redacted(),
				"request_id": req.Header.Get(gitlab.RequestIDHeader),
			})
		}
		retryClient.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
			c.logger.Debug("HTTP Response", map[string]interface{}{
				"status":     resp.StatusCode,
				"request_id": resp.Request.Header.Get(gitlab.RequestIDHeader),
			})
		}
	}

	return retryClient
}

// neverRetry hands every outcome straight back to the caller.
func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Do sends req. A status of 400 or above returns both the response and a
// *gitlab.ResponseError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	intercepted, err := c.prepare(req)
	if err != nil {
		return nil, err
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	fullURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.afterResponse(ctx, intercepted, &gitlab.Response{Error: err})

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.afterResponse(ctx, intercepted, &gitlab.Response{StatusCode: httpResp.StatusCode, Error: err})

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.afterResponse(ctx, intercepted, &gitlab.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, gitlab.ParseResponseError(httpResp.StatusCode, httpResp.Status, body)
	}

	return resp, nil
}

func (c *Client) prepare(req *Request) (*gitlab.Request, error) {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	intercepted := &gitlab.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  headers,
		Metadata: make(map[string]interface{}),
	}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		intercepted.Body = data
		headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return intercepted, nil
}

// afterResponse runs the response interceptors. They only observe, so their
// errors are logged rather than returned.
func (c *Client) afterResponse(ctx context.Context, req *gitlab.Request, resp *gitlab.Response) {
	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{"error": err.Error()})
	}
}

// buildURL joins the base URL and an already escaped path. url.Parse keeps
// the escaped form (RawPath), so %2F reaches the wire unchanged.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

// leveledLogger adapts gitlab.Logger to retryablehttp.LeveledLogger. Only
// warnings and errors are forwarded; request tracing goes through the log
// hooks.
type leveledLogger struct {
	logger gitlab.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(string, ...interface{}) {}

func (l *leveledLogger) Debug(string, ...interface{}) {}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]

		if u, ok := value.(*url.URL); ok {
			value = u.Redacted()
		}

		if err, ok := value.(error); ok {
			value = err.Error()
		}

		out[key] = value
	}

	return out
}
