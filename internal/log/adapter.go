package log

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// Adapter exposes a *slog.Logger as a gitlab.Logger.
type Adapter struct {
	logger *slog.Logger
}

var _ gitlab.Logger = (*Adapter)(nil)

// NewAdapter wraps logger. A nil logger uses New(nil).
func NewAdapter(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = New(nil)
	}

	return &Adapter{logger: logger}
}

func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.log(slog.LevelDebug, msg, fields)
}

func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.log(slog.LevelInfo, msg, fields)
}

func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.log(slog.LevelWarn, msg, fields)
}

func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.log(slog.LevelError, msg, fields)
}

// log emits fields as attributes in key order so output is stable.
func (a *Adapter) log(level slog.Level, msg string, fields map[string]interface{}) {
	ctx := context.Background()
	if !a.logger.Enabled(ctx, level) {
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}

	a.logger.LogAttrs(ctx, level, msg, attrs...)
}
