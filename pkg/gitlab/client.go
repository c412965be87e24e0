package gitlab

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ProjectClients provides access to project and repository resource clients.
type ProjectClients interface {
	Projects() ProjectsClient
	Repository() RepositoryClient
	Files() FilesClient
	Commits() CommitsClient
	Branches() BranchesClient
	Tags() TagsClient
	Releases() ReleasesClient
	ProtectedBranches() ProtectedBranchesClient
}

// CollaborationClients provides access to issue, merge request and wiki clients.
type CollaborationClients interface {
	Issues() IssuesClient
	MergeRequests() MergeRequestsClient
	Wikis() WikisClient
	Members() MembersClient
	Events() EventsClient
}

// CIClients provides access to CI/CD resource clients.
type CIClients interface {
	Pipelines() PipelinesClient
	Jobs() JobsClient
	Environments() EnvironmentsClient
	CILint() CILintClient
}

// OrganizationClients provides access to labels, milestones, users and groups.
type OrganizationClients interface {
	Labels() LabelsClient
	Milestones() MilestonesClient
	Users() UsersClient
	Groups() GroupsClient
}

// Client is the GitLab REST client. Implementations hold only the
// credentials and the transport and are safe for concurrent use.
type Client interface {
	ProjectClients
	CollaborationClients
	CIClients
	OrganizationClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// MetricsRecorder receives one observation per HTTP round trip.
type MetricsRecorder interface {
	ObserveRequest(method string, statusCode int, duration time.Duration)
}

// Config represents client configuration for building a gitlab.Client.
//
// # Credentials
//
// Credentials are required and immutable. Build them once with
// NewCredentials; the client never reads the environment.
//
// # Timeouts and retries
//
// Every request is bounded by HTTPTimeout (30s when zero) in addition to
// the caller's context. Requests are never retried.
type Config struct {
	// Credentials carries the API base URL and the bearer token.
	Credentials Credentials

	// HTTPTimeout bounds a single request including reading the body.
	HTTPTimeout time.Duration
	// Debug enables request/response logging at debug level when a Logger is set.
	Debug bool
	// Logger is used by the HTTP layer and interceptors.
	Logger Logger
	// Metrics, when set, observes every HTTP round trip.
	Metrics MetricsRecorder
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Credentials is the immutable pair of API base URL and access token.
type Credentials struct {
	baseURL string
	token   string
}

// NewCredentials validates baseURL and returns credentials for it. A missing
// scheme defaults to https and a trailing slash is trimmed.
func NewCredentials(baseURL, token string) (Credentials, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return Credentials{}, ErrBaseURLRequired
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return Credentials{}, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	if token == "" {
		return Credentials{}, ErrTokenRequired
	}

	return Credentials{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}, nil
}

// BaseURL returns the API base URL, e.g. https://gitlab.com/api/v4.
func (c Credentials) BaseURL() string {
	return c.baseURL
}

// Token returns the bearer token.
func (c Credentials) Token() string {
	return c.token
}

// IsZero reports whether c was never initialized.
func (c Credentials) IsZero() bool {
	return c.baseURL == "" && c.token == ""
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{baseURL: %s, token: %s}", c.baseURL, redact(c.token))
}

// GoString keeps %#v from printing the token.
func (c Credentials) GoString() string {
	return c.String()
}

func redact(token string) string {
	if token == "" {
		return ""
	}

	return "[REDACTED]"
}

// PathSegment escapes a single dynamic path segment. Slashes become %2F so
// namespace paths like group/project address one resource.
func PathSegment(v interface{}) string {
	return url.PathEscape(fmt.Sprint(v))
}

// CILintClient validates CI configuration.
type CILintClient interface {
	Lint(ctx context.Context, projectID string, opts *CILintOptions) (*CILintResult, error)
}
