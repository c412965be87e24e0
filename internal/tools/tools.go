// Package tools maps named tool calls onto the GitLab resource clients.
//
// Each tool declares its arguments as a struct whose shape tags drive both
// the published input schema and the checks applied before the call.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
	"github.com/fivetwenty-io/gitlab-mcp/internal/log"
	"github.com/fivetwenty-io/gitlab-mcp/internal/metrics"
	"github.com/fivetwenty-io/gitlab-mcp/internal/validate"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// Static errors for err113 compliance.
var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrReadOnly      = errors.New("tool not available in read-only mode")
	ErrDuplicateTool = errors.New("tool already registered")
)

// Handler runs a tool with its decoded arguments, which are a pointer to the
// tool's Args type.
type Handler func(ctx context.Context, client gitlab.Client, args interface{}) (interface{}, error)

// Tool is one callable operation.
type Tool struct {
	Name        string
	Description string
	ReadOnly    bool
	Args        reflect.Type
	Handler     Handler
}

// Schema returns the input schema properties and required names of the tool.
func (t Tool) Schema() (map[string]interface{}, []string) {
	props, required := validate.ObjectSchema(t.Args)
	if props == nil {
		props = map[string]interface{}{}
	}

	return props, required
}

// Text is a tool result that is returned verbatim rather than as JSON.
type Text string

func newTool[A any](name, description string, readOnly bool, fn func(ctx context.Context, client gitlab.Client, args *A) (interface{}, error)) Tool {
	return Tool{
		Name:        name,
		Description: description,
		ReadOnly:    readOnly,
		Args:        reflect.TypeOf((*A)(nil)).Elem(),
		Handler: func(ctx context.Context, client gitlab.Client, args interface{}) (interface{}, error) {
			return fn(ctx, client, args.(*A))
		},
	}
}

// CallError is returned when a tool cannot be dispatched at all.
type CallError struct {
	Tool string
	Err  error
}

func (e *CallError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownTool):
		return "Unknown tool: " + e.Tool
	case errors.Is(e.Err, ErrReadOnly):
		return fmt.Sprintf("Tool '%s' is not available in read-only mode", e.Tool)
	default:
		return fmt.Sprintf("tool %s: %v", e.Tool, e.Err)
	}
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// ArgumentError reports arguments that do not fit the tool's shape.
type ArgumentError struct {
	Tool       string
	Violations []gitlab.FieldViolation
}

func (e *ArgumentError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}

	return "Invalid arguments: " + strings.Join(parts, ", ")
}

// Registry holds the tools available to one client.
type Registry struct {
	client   gitlab.Client
	tools    map[string]Tool
	order    []string
	readOnly bool
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithReadOnly hides and refuses every tool that writes.
func WithReadOnly(readOnly bool) Option {
	return func(r *Registry) {
		r.readOnly = readOnly
	}
}

// WithMetrics records every call.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithLogger sets the logger used for call tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a registry holding every GitLab tool.
func NewRegistry(client gitlab.Client, opts ...Option) *Registry {
	r := newRegistry(client, opts...)

	for _, group := range [][]Tool{
		projectTools(),
		repositoryTools(),
		fileTools(),
		issueTools(),
		mergeRequestTools(),
		wikiTools(),
		ciTools(),
		labelTools(),
		userTools(),
		groupTools(),
	} {
		for _, tool := range group {
			if err := r.Register(tool); err != nil {
				panic(err)
			}
		}
	}

	return r
}

func newRegistry(client gitlab.Client, opts ...Option) *Registry {
	r := &Registry{
		client: client,
		tools:  make(map[string]Tool),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = log.WithComponent(r.logger, "tools")

	return r
}

// Register adds a tool. Names are unique.
func (r *Registry) Register(tool Tool) error {
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}

	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)

	return nil
}

// ReadOnly reports whether write tools are hidden.
func (r *Registry) ReadOnly() bool {
	return r.readOnly
}

// Lookup returns the named tool, whether or not read-only mode hides it.
func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, ok := r.tools[name]

	return tool, ok
}

// List returns the available tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))

	for _, name := range r.order {
		tool := r.tools[name]
		if r.readOnly && !tool.ReadOnly {
			continue
		}

		out = append(out, tool)
	}

	return out
}

// Call checks args against the tool's shape and runs it.
func (r *Registry) Call(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	start := time.Now()

	tool, ok := r.tools[name]
	if !ok {
		r.record(name, metrics.OutcomeDenied, start)

		return nil, &CallError{Tool: name, Err: ErrUnknownTool}
	}

	if r.readOnly && !tool.ReadOnly {
		r.record(name, metrics.OutcomeDenied, start)

		return nil, &CallError{Tool: name, Err: ErrReadOnly}
	}

	decoded, err := decodeArgs(tool, args)
	if err != nil {
		r.record(name, metrics.OutcomeError, start)

		return nil, err
	}

	result, err := tool.Handler(ctx, r.client, decoded)
	if err != nil {
		r.record(name, metrics.OutcomeError, start)
		r.logger.Debug("tool call failed", log.ToolKey, name, "error", err)

		return nil, err
	}

	r.record(name, metrics.OutcomeSuccess, start)

	return result, nil
}

func (r *Registry) record(name, outcome string, start time.Time) {
	elapsed := time.Since(start)

	r.logger.Debug("tool call", log.ToolKey, name, "outcome", outcome, log.DurationKey, elapsed.Milliseconds())

	if r.metrics != nil {
		r.metrics.RecordToolCall(name, outcome, elapsed)
	}
}

func decodeArgs(tool Tool, args map[string]interface{}) (interface{}, error) {
	if args == nil {
		args = map[string]interface{}{}
	}

	out := reflect.New(tool.Args).Interface()

	err := validate.DecodeValue(args, out)
	if err != nil {
		var gerr *gitlab.Error
		if errors.As(err, &gerr) && gerr.Kind == gitlab.KindValidation {
			return nil, &ArgumentError{Tool: tool.Name, Violations: gerr.Violations}
		}

		return nil, fmt.Errorf("decoding arguments for %s: %w", tool.Name, err)
	}

	return out, nil
}

// Format renders a tool result: Text as is, anything else as indented JSON.
func Format(result interface{}) (string, error) {
	if text, ok := result.(Text); ok {
		return string(text), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	return string(data), nil
}
