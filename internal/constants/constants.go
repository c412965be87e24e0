package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds every request sent to the GitLab API.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for connection checks.
	ShortHTTPTimeout = 10 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the SSE listener.
	ShutdownTimeout = 5 * time.Second

	// ReadHeaderTimeout is applied to the SSE listener.
	ReadHeaderTimeout = 10 * time.Second
)

// GitLab API defaults.
const (
	// DefaultAPIURL is used when GITLAB_API_URL is not set.
	DefaultAPIURL = "https://gitlab.com/api/v4"

	// DefaultPort is the SSE listener port when PORT is not set.
	DefaultPort = 3000

	// MaxPort is the highest valid TCP port.
	MaxPort = 65535

	// MinTokenLength is the length below which a token is reported as suspicious.
	MinTokenLength = 20

	// DefaultPage is the first page requested when a caller omits page.
	DefaultPage = 1

	// DefaultSearchPageSize is the page size for repository search.
	DefaultSearchPageSize = 20

	// MaxPageSize is the largest per_page GitLab accepts.
	MaxPageSize = 100

	// TotalHeader carries the total number of matching items on list endpoints.
	TotalHeader = "X-Total"

	// CIConfigPath is the conventional CI configuration file name.
	CIConfigPath = ".gitlab-ci.yml"

	// UnknownCommitID is reported when GitLab returns no commit id for a file write.
	UnknownCommitID = "unknown"

	// AttachmentDataURIPrefix prefixes wiki attachment content that is not already a data URI.
	AttachmentDataURIPrefix = "data:application/octet-stream;base64,"
)

// Environment variables.
const (
	EnvToken        = "GITLAB_PERSONAL_ACCESS_TOKEN"
	EnvAPIURL       = "GITLAB_API_URL"
	EnvPort         = "PORT"
	EnvUseSSE       = "USE_SSE"
	EnvReadOnlyMode = "GITLAB_READ_ONLY_MODE"
	EnvHTTPTimeout  = "GITLAB_HTTP_TIMEOUT"
	EnvLogLevel     = "GITLAB_MCP_LOG_LEVEL"
)

// Server identity.
const (
	// ServerName is advertised to MCP clients.
	ServerName = "gitlab-mcp"

	// KeyringService is the OS keyring service that stores tokens.
	KeyringService = "gitlab-mcp"

	// ConfigDirName is the directory under $HOME holding the config file.
	ConfigDirName = ".gitlab-mcp"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// JSONIndentSize is the number of spaces for JSON indentation.
const JSONIndentSize = 2

// MaskedSecret is used to hide sensitive information.
const MaskedSecret = "***"
