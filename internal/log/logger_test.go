package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, os.Stderr, cfg.Output)
	assert.False(t, cfg.AddSource)
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		level     string
		format    Format
		addSource bool
	}{
		{"defaults", map[string]string{}, "info", FormatJSON, false},
		{"LOG_LEVEL", map[string]string{"LOG_LEVEL": "WARN"}, "warn", FormatJSON, false},
		{"own level wins", map[string]string{"LOG_LEVEL": "warn", "GITLAB_MCP_LOG_LEVEL": "error"}, "error", FormatJSON, false},
		{"debug wins over levels", map[string]string{"GITLAB_MCP_DEBUG": "1", "LOG_LEVEL": "error"}, "debug", FormatJSON, true},
		{"text format", map[string]string{"LOG_FORMAT": "TEXT"}, "info", FormatText, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"GITLAB_MCP_DEBUG", "GITLAB_MCP_LOG_LEVEL", "LOG_LEVEL", "LOG_FORMAT"} {
				t.Setenv(key, "")
			}

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg := FromEnv()
			assert.Equal(t, tt.level, cfg.Level)
			assert.Equal(t, tt.format, cfg.Format)
			assert.Equal(t, tt.addSource, cfg.AddSource)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})
		logger.Debug("hidden")
		logger.Info("shown", "tool", "list_issues")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
		assert.Equal(t, "shown", record["msg"])
		assert.Equal(t, "list_issues", record["tool"])
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		New(&Config{Level: "debug", Format: FormatText, Output: &buf}).Debug("trace me")
		assert.Contains(t, buf.String(), "msg=\"trace me\"")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "...wxyz", SanitizeToken("glpat-abcdwxyz"))
	assert.Equal(t, "[REDACTED]", SanitizeToken("abc"))
}

func TestAdapter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewAdapter(New(&Config{Level: "info", Format: FormatJSON, Output: &buf}))
	adapter.Debug("dropped", nil)
	adapter.Warn("HTTP request failed", map[string]interface{}{"status": 502, "method": "GET"})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "HTTP request failed", record["msg"])
	assert.Equal(t, "GET", record["method"])
	assert.EqualValues(t, 502, record["status"])
}
