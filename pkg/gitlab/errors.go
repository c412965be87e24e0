package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
)

// ErrorKind classifies a failed call.
type ErrorKind string

// Error kinds.
const (
	KindAuth       ErrorKind = "auth"
	KindPermission ErrorKind = "permission"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindRateLimit  ErrorKind = "rate_limit"
	KindValidation ErrorKind = "validation"
	KindNetwork    ErrorKind = "network"
	// KindAPI covers every other non-success status (400, 405, 406, 422, 5xx).
	KindAPI ErrorKind = "api"
)

// FieldViolation is one failed expectation found while checking a payload
// against its declared shape.
type FieldViolation struct {
	Path        string `json:"path"        yaml:"path"`
	Expectation string `json:"expectation" yaml:"expectation"`
}

func (v FieldViolation) String() string {
	if v.Path == "" {
		return v.Expectation
	}

	return v.Path + ": " + v.Expectation
}

// Error is the domain error returned by every client operation.
type Error struct {
	Kind ErrorKind `json:"kind"                  yaml:"kind"`
	// StatusCode is zero for network and client-side validation failures.
	StatusCode int              `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Message    string           `json:"message"               yaml:"message"`
	Violations []FieldViolation `json:"violations,omitempty"  yaml:"violations,omitempty"`
	Err        error            `json:"-"                     yaml:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return string(e.Kind) + " error"
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == "" && t.StatusCode == 0 && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrUnauthorized = &Error{Kind: KindAuth}
	ErrForbidden    = &Error{Kind: KindPermission}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrRateLimited  = &Error{Kind: KindRateLimit}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrNetwork      = &Error{Kind: KindNetwork}
	ErrAPI          = &Error{Kind: KindAPI}
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrBaseURLRequired       = errors.New("GitLab API URL is required")
	ErrInvalidBaseURL        = errors.New("GitLab API URL must be an absolute http or https URL")
	ErrTokenRequired         = errors.New("GitLab token is required")
	ErrCIConfigUnavailable   = errors.New("no content provided and could not read .gitlab-ci.yml from project")
	ErrNoDefaultBranch       = errors.New("project has no default branch")
	ErrEmptyFileList         = errors.New("at least one file is required")
	ErrUnexpectedContentType = errors.New("unexpected file encoding")
)

// NewValidationError builds a validation error carrying every violation.
func NewValidationError(violations ...FieldViolation) *Error {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}

	return &Error{
		Kind:       KindValidation,
		Message:    "validation failed: " + strings.Join(parts, "; "),
		Violations: violations,
	}
}

// ResponseError is a raw non-success response, before it is mapped to an Error.
type ResponseError struct {
	StatusCode int
	Status     string
	Message    string
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("GitLab API error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// ParseResponseError extracts a best-effort message from an error body: the
// JSON "message" field (string, map or list), then "error_description" or
// "error", then the raw body, then the status text.
func ParseResponseError(statusCode int, status string, body []byte) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Status: status}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := flattenMessage(payload["message"]); msg != "" {
			respErr.Message = msg
		} else if msg := flattenMessage(payload["error_description"]); msg != "" {
			respErr.Message = msg
		} else if msg := flattenMessage(payload["error"]); msg != "" {
			respErr.Message = msg
		}
	}

	if respErr.Message == "" {
		respErr.Message = strings.TrimSpace(string(body))
	}

	if respErr.Message == "" {
		respErr.Message = statusText(statusCode, status)
	}

	return respErr
}

func statusText(statusCode int, status string) string {
	if status != "" {
		return status
	}

	if text := http.StatusText(statusCode); text != "" {
		return fmt.Sprintf("%d %s", statusCode, text)
	}

	return fmt.Sprintf("HTTP %d", statusCode)
}

// flattenMessage renders GitLab's message field, which is a string on most
// endpoints and a field -> []string map on validation failures.
func flattenMessage(v interface{}) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case []interface{}:
		parts := make([]string, 0, len(m))
		for _, item := range m {
			if s := flattenMessage(item); s != "" {
				parts = append(parts, s)
			}
		}

		return strings.Join(parts, ", ")
	case map[string]interface{}:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := flattenMessage(m[k]); s != "" {
				parts = append(parts, k+" "+s)
			}
		}

		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(m)
	}
}

// StatusOverride replaces the mapped message for one status code.
type StatusOverride struct {
	StatusCode int
	Message    string
}

// OnStatus returns an override for MapError.
func OnStatus(statusCode int, message string) StatusOverride {
	return StatusOverride{StatusCode: statusCode, Message: message}
}

// MapError converts a transport error or ResponseError into an Error. subject
// names what the call was addressing, e.g. "issue #5 in project group/app", and
// is woven into the message. Errors that are already mapped pass through.
func MapError(err error, subject string, overrides ...StatusOverride) error {
	if err == nil {
		return nil
	}

	var mapped *Error
	if errors.As(err, &mapped) {
		return err
	}

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		msg := fmt.Sprintf("network error while requesting %s: %v", subject, err)
		if errors.Is(err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("request for %s timed out: %v", subject, err)
		}

		return &Error{Kind: KindNetwork, Message: msg, Err: err}
	}

	mapped = &Error{
		Kind:       kindForStatus(respErr.StatusCode),
		StatusCode: respErr.StatusCode,
		Err:        respErr,
	}

	for _, o := range overrides {
		if o.StatusCode == respErr.StatusCode {
			mapped.Message = o.Message

			return mapped
		}
	}

	switch mapped.Kind {
	case KindAuth:
		mapped.Message = fmt.Sprintf("authentication failed while accessing %s: %s", subject, respErr.Message)
	case KindPermission:
		mapped.Message = fmt.Sprintf("permission denied for %s: %s", subject, respErr.Message)
	case KindNotFound:
		mapped.Message = fmt.Sprintf("%s not found: %s", subject, respErr.Message)
	case KindConflict:
		mapped.Message = fmt.Sprintf("conflict on %s: %s", subject, respErr.Message)
	case KindRateLimit:
		mapped.Message = fmt.Sprintf("GitLab API rate limit exceeded while accessing %s", subject)
	default:
		mapped.Message = fmt.Sprintf("GitLab API error on %s (%d): %s", subject, respErr.StatusCode, respErr.Message)
	}

	return mapped
}

func kindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusForbidden:
		return KindPermission
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindAPI
	}
}

// KindOf returns the kind of err, or "" when err is not a domain error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindAuth
}

// IsForbidden checks if the error is a permission error.
func IsForbidden(err error) bool {
	return KindOf(err) == KindPermission
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return KindOf(err) == KindRateLimit
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNetwork checks if the error is a transport failure.
func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}
