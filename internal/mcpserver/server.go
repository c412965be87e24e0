// Package mcpserver exposes the tool registry over the Model Context Protocol.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/log"
	"github.com/fivetwenty-io/gitlab-mcp/internal/metrics"
	"github.com/fivetwenty-io/gitlab-mcp/internal/tools"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// Config configures the MCP server.
type Config struct {
	// Name is advertised to clients (default: "gitlab-mcp").
	Name string

	// Version is the build version (default: "dev").
	Version string

	// Logger receives server logs. It must not write to stdout.
	Logger *slog.Logger

	// Metrics, when set, is served on /metrics by the SSE listener.
	Metrics *metrics.Metrics
}

// Server wraps the MCP server and the registry it serves.
type Server struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
	logger    *slog.Logger
	metrics   *metrics.Metrics
	version   string
}

// New creates a server publishing every tool the registry lists.
func New(registry *tools.Registry, config Config) *Server {
	if config.Name == "" {
		config.Name = constants.ServerName
	}

	if config.Version == "" {
		config.Version = "dev"
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		mcpServer: server.NewMCPServer(
			config.Name,
			config.Version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
			server.WithInstructions(instructions(registry.ReadOnly())),
		),
		registry: registry,
		logger:   log.WithComponent(logger, "mcpserver"),
		metrics:  config.Metrics,
		version:  config.Version,
	}

	for _, tool := range registry.List() {
		s.mcpServer.AddTool(Definition(tool), s.handler(tool.Name))
	}

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Definition converts a registry tool into its protocol declaration.
func Definition(tool tools.Tool) mcp.Tool {
	props, required := tool.Schema()

	return mcp.Tool{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
		Annotations: mcp.ToolAnnotation{
			ReadOnlyHint:    gitlab.Bool(tool.ReadOnly),
			DestructiveHint: gitlab.Bool(!tool.ReadOnly),
			OpenWorldHint:   gitlab.Bool(true),
		},
	}
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.registry.Call(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(ErrorMessage(err)), nil
		}

		text, err := tools.Format(result)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(text), nil
	}
}

// ErrorMessage renders a failed call for the client. GitLab failures are
// prefixed with their kind; dispatch and argument failures are shown as is.
func ErrorMessage(err error) string {
	var (
		argErr  *tools.ArgumentError
		callErr *tools.CallError
		apiErr  *gitlab.Error
	)

	switch {
	case errors.As(err, &argErr), errors.As(err, &callErr):
		return err.Error()
	case errors.As(err, &apiErr):
		return fmt.Sprintf("%s error: %s", apiErr.Kind, err.Error())
	default:
		return err.Error()
	}
}

// ServeStdio serves the protocol on stdin/stdout until ctx is done or stdin
// closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.serveStdio(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("GitLab MCP server running with stdio transport",
		slog.String("version", s.version),
		slog.Int("tools", len(s.registry.List())),
	)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}

func instructions(readOnly bool) string {
	text := `Tools for working with a GitLab instance through its REST API.

Projects and groups are addressed by numeric ID or by their full path
(for example "group/subgroup/project"). List tools return {"count", "items"},
where count is the total reported by GitLab. Use validate_ci_yaml to check a
.gitlab-ci.yml; without content it reads the file from the default branch.`

	if readOnly {
		text += "\n\nThe server runs in read-only mode: only tools that do not modify GitLab are available."
	}

	return text
}
