package client

import (
	"errors"
	"net/url"

	"github.com/fivetwenty-io/gitlab-mcp/internal/auth"
	"github.com/fivetwenty-io/gitlab-mcp/internal/http"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// Static errors for err113 compliance.
var (
	ErrCredentialsRequired = errors.New("credentials are required")
)

// Client implements the gitlab.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager http.TokenManager
	baseURL      string
	logger       gitlab.Logger

	// Resource clients
	projects          *ProjectsClient
	repository        *RepositoryClient
	files             *FilesClient
	commits           *CommitsClient
	branches          *BranchesClient
	tags              *TagsClient
	releases          *ReleasesClient
	protectedBranches *ProtectedBranchesClient
	issues            *IssuesClient
	mergeRequests     *MergeRequestsClient
	wikis             *WikisClient
	members           *MembersClient
	events            *EventsClient
	pipelines         *PipelinesClient
	jobs              *JobsClient
	environments      *EnvironmentsClient
	ciLint            *CILintClient
	labels            *LabelsClient
	milestones        *MilestonesClient
	users             *UsersClient
	groups            *GroupsClient
}

var _ gitlab.Client = (*Client)(nil)

// New creates a GitLab client from config. The credentials are the only
// source of the base URL and token.
func New(config *gitlab.Config) (*Client, error) {
	if config == nil {
		return nil, gitlab.ErrConfigRequired
	}

	if config.Credentials.IsZero() {
		return nil, ErrCredentialsRequired
	}

	return NewWithTokenManager(config, auth.NewStaticTokenManager(config.Credentials))
}

// NewWithTokenManager creates a client that takes its bearer token from
// tokenManager instead of the configured credentials.
func NewWithTokenManager(config *gitlab.Config, tokenManager http.TokenManager) (*Client, error) {
	if config == nil {
		return nil, gitlab.ErrConfigRequired
	}

	baseURL := config.Credentials.BaseURL()
	if baseURL == "" {
		return nil, gitlab.ErrBaseURLRequired
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, gitlab.ErrInvalidBaseURL
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gitlab.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts,
			http.WithLogger(config.Logger),
			http.WithRequestInterceptor(gitlab.LoggingInterceptor(config.Logger)),
			http.WithResponseInterceptor(gitlab.LoggingResponseInterceptor(config.Logger)),
		)
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Metrics != nil {
		httpOpts = append(httpOpts,
			http.WithRequestInterceptor(gitlab.MetricsRequestInterceptor()),
			http.WithResponseInterceptor(gitlab.MetricsResponseInterceptor(config.Metrics)),
		)
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.repository = NewRepositoryClient(c.httpClient)
	c.files = NewFilesClient(c.httpClient)
	c.commits = NewCommitsClient(c.httpClient)
	c.branches = NewBranchesClient(c.httpClient, c.projects)
	c.tags = NewTagsClient(c.httpClient)
	c.releases = NewReleasesClient(c.httpClient)
	c.protectedBranches = NewProtectedBranchesClient(c.httpClient)
	c.issues = NewIssuesClient(c.httpClient)
	c.mergeRequests = NewMergeRequestsClient(c.httpClient)
	c.wikis = NewWikisClient(c.httpClient)
	c.members = NewMembersClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
	c.pipelines = NewPipelinesClient(c.httpClient)
	c.jobs = NewJobsClient(c.httpClient)
	c.environments = NewEnvironmentsClient(c.httpClient)
	c.ciLint = NewCILintClient(c.httpClient, c.projects, c.files)
	c.labels = NewLabelsClient(c.httpClient)
	c.milestones = NewMilestonesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
}

// BaseURL returns the API base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// Projects implements gitlab.Client.Projects.
func (c *Client) Projects() gitlab.ProjectsClient {
	return c.projects
}

// Repository implements gitlab.Client.Repository.
func (c *Client) Repository() gitlab.RepositoryClient {
	return c.repository
}

// Files implements gitlab.Client.Files.
func (c *Client) Files() gitlab.FilesClient {
	return c.files
}

// Commits implements gitlab.Client.Commits.
func (c *Client) Commits() gitlab.CommitsClient {
	return c.commits
}

// Branches implements gitlab.Client.Branches.
func (c *Client) Branches() gitlab.BranchesClient {
	return c.branches
}

// Tags implements gitlab.Client.Tags.
func (c *Client) Tags() gitlab.TagsClient {
	return c.tags
}

// Releases implements gitlab.Client.Releases.
func (c *Client) Releases() gitlab.ReleasesClient {
	return c.releases
}

// ProtectedBranches implements gitlab.Client.ProtectedBranches.
func (c *Client) ProtectedBranches() gitlab.ProtectedBranchesClient {
	return c.protectedBranches
}

// Issues implements gitlab.Client.Issues.
func (c *Client) Issues() gitlab.IssuesClient {
	return c.issues
}

// MergeRequests implements gitlab.Client.MergeRequests.
func (c *Client) MergeRequests() gitlab.MergeRequestsClient {
	return c.mergeRequests
}

// Wikis implements gitlab.Client.Wikis.
func (c *Client) Wikis() gitlab.WikisClient {
	return c.wikis
}

// Members implements gitlab.Client.Members.
func (c *Client) Members() gitlab.MembersClient {
	return c.members
}

// Events implements gitlab.Client.Events.
func (c *Client) Events() gitlab.EventsClient {
	return c.events
}

// Pipelines implements gitlab.Client.Pipelines.
func (c *Client) Pipelines() gitlab.PipelinesClient {
	return c.pipelines
}

// Jobs implements gitlab.Client.Jobs.
func (c *Client) Jobs() gitlab.JobsClient {
	return c.jobs
}

// Environments implements gitlab.Client.Environments.
func (c *Client) Environments() gitlab.EnvironmentsClient {
	return c.environments
}

// CILint implements gitlab.Client.CILint.
func (c *Client) CILint() gitlab.CILintClient {
	return c.ciLint
}

// Labels implements gitlab.Client.Labels.
func (c *Client) Labels() gitlab.LabelsClient {
	return c.labels
}

// Milestones implements gitlab.Client.Milestones.
func (c *Client) Milestones() gitlab.MilestonesClient {
	return c.milestones
}

// Users implements gitlab.Client.Users.
func (c *Client) Users() gitlab.UsersClient {
	return c.users
}

// Groups implements gitlab.Client.Groups.
func (c *Client) Groups() gitlab.GroupsClient {
	return c.groups
}
