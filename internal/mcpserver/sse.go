package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
)

// SSE endpoint paths.
const (
	SSEPath     = "/sse"
	MessagePath = "/message"
	MetricsPath = "/metrics"
	HealthPath  = "/healthz"
)

// Handler returns the HTTP surface of the SSE transport: the event stream,
// the message endpoint, a health probe and, when configured, metrics.
func (s *Server) Handler() http.Handler {
	handler, _ := s.sseHandler()

	return handler
}

func (s *Server) sseHandler() (http.Handler, *server.SSEServer) {
	sse := server.NewSSEServer(s.mcpServer,
		server.WithSSEEndpoint(SSEPath),
		server.WithMessageEndpoint(MessagePath),
	)

	mux := http.NewServeMux()
	mux.Handle(SSEPath, sse.SSEHandler())
	mux.Handle(MessagePath, sse.MessageHandler())
	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	if s.metrics != nil {
		mux.Handle(MetricsPath, s.metrics.Handler())
	}

	return mux, sse
}

// ServeSSE listens on port and serves the SSE transport until ctx is done,
// then shuts down within constants.ShutdownTimeout.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	listener, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", port, err)
	}

	return s.serveSSE(ctx, listener)
}

func (s *Server) serveSSE(ctx context.Context, listener net.Listener) error {
	handler, sse := s.sseHandler()

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
		// Open event streams end with ctx so Shutdown does not wait on them.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	s.logger.Info("GitLab MCP server running with SSE transport",
		slog.String("address", listener.Addr().String()),
		slog.String("version", s.version),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("SSE server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down GitLab MCP server")

	if err := sse.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("closing SSE sessions", slog.String("error", err.Error()))
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down SSE server: %w", err)
	}

	return nil
}
