package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/gitlab-mcp/internal/config"
	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/mcpserver"
	"github.com/fivetwenty-io/gitlab-mcp/internal/metrics"
	"github.com/fivetwenty-io/gitlab-mcp/internal/tools"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Run the MCP server on stdin/stdout, or with --sse as an HTTP server
exposing /sse, /message, /healthz and /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg)

			report := cfg.Validate()
			for _, warning := range report.Warnings {
				logger.Warn(warning)
			}

			for _, info := range report.Info {
				logger.Info(info)
			}

			if !report.OK() {
				return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(report.Errors, "; "))
			}

			if !cfg.UseSSE && term.IsTerminal(int(os.Stdin.Fd())) {
				logger.Warn("stdin is a terminal; the stdio transport expects an MCP client on stdin")
			}

			m := metrics.New()

			client, err := newClient(cfg, logger, m)
			if err != nil {
				return err
			}

			registry := tools.NewRegistry(client,
				tools.WithReadOnly(cfg.ReadOnly),
				tools.WithMetrics(m),
				tools.WithLogger(logger),
			)

			server := mcpserver.New(registry, mcpserver.Config{
				Version: a.info.Version,
				Logger:  logger,
				Metrics: m,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.UseSSE {
				logger.Info("starting SSE transport", slog.Int("port", cfg.Port))

				return server.ServeSSE(ctx, cfg.Port)
			}

			return server.ServeStdio(ctx)
		},
	}

	cmd.Flags().Bool("sse", false, "serve over Server-Sent Events instead of stdio")
	cmd.Flags().IntP("port", "p", constants.DefaultPort, "SSE listener port")

	_ = a.v.BindPFlag(config.KeySSE, cmd.Flags().Lookup("sse"))
	_ = a.v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))

	return cmd
}
