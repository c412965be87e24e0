package gitlab

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
)

// ListResponse is the envelope returned by every list operation. Count is
// the remote total from the X-Total header unless the operation narrowed the
// page client-side, in which case it equals len(Items).
type ListResponse[T any] struct {
	Count int `json:"count" yaml:"count"`
	Items []T `json:"items" yaml:"items"`
}

// ListOptions carries the page/per_page query parameters shared by list calls.
type ListOptions struct {
	Page    int `json:"page,omitempty"     url:"page,omitempty"     yaml:"page,omitempty"     shape:"min=1"       desc:"Page number (1-indexed)"`
	PerPage int `json:"per_page,omitempty" url:"per_page,omitempty" yaml:"per_page,omitempty" shape:"min=1,max=100" desc:"Results per page (1-100)"`
}

// Visibility levels for projects and groups.
const (
	VisibilityPrivate  = "private"
	VisibilityInternal = "internal"
	VisibilityPublic   = "public"
)

// User is the compact user record embedded in most resources.
type User struct {
	ID        int    `json:"id"                   yaml:"id"                   shape:"required"`
	Name      string `json:"name"                 yaml:"name"                 shape:"required"`
	Username  string `json:"username"             yaml:"username"             shape:"required"`
	AvatarURL string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	WebURL    string `json:"web_url,omitempty"    yaml:"web_url,omitempty"`
}

// LabelName is a label as it appears on issues: older GitLab sends plain
// strings, newer versions may send {name: ...} objects.
type LabelName string

// NormalizeShape reduces a label object to its name.
func (LabelName) NormalizeShape(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m["name"]
	}

	return v
}

// Labels is a list of label names. GitLab expects it comma-joined in
// request bodies.
type Labels []string

func (l Labels) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(l, ","))
}

func (l *Labels) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*l = splitLabels(joined)

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	*l = list

	return nil
}

// NormalizeShape accepts a comma-separated string in place of a list.
func (Labels) NormalizeShape(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}

	parts := splitLabels(s)
	out := make([]interface{}, len(parts))

	for i, p := range parts {
		out[i] = p
	}

	return out
}

func splitLabels(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// IIDFilter is an internal id given either as a number or a string.
type IIDFilter string

// NormalizeShape turns numeric ids into their string form.
func (IIDFilter) NormalizeShape(v interface{}) interface{} {
	switch v.(type) {
	case string, nil:
		return v
	case map[string]interface{}, []interface{}, bool:
		return v
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}

	return v
}

// ShapeSchema declares both accepted JSON types.
func (IIDFilter) ShapeSchema() map[string]interface{} {
	return map[string]interface{}{"type": []string{"number", "string"}}
}

// Matches reports whether iid equals the filter in string form.
func (f IIDFilter) Matches(iid int) bool {
	return string(f) == cast.ToString(iid)
}

// Bool returns a pointer to v, for optional request fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Nullable is an optional request field that can also be sent as an explicit
// null, e.g. to clear an issue's milestone. The zero value is absent.
type Nullable[T any] map[bool]T

// NewNullable returns a Nullable holding v.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{true: v}
}

// Null returns a Nullable that encodes as null.
func Null[T any]() Nullable[T] {
	var zero T

	return Nullable[T]{false: zero}
}

// IsNull reports whether n was explicitly set to null.
func (n Nullable[T]) IsNull() bool {
	_, ok := n[false]

	return ok
}

// Get returns the value and whether one is set.
func (n Nullable[T]) Get() (T, bool) {
	v, ok := n[true]

	return v, ok
}

// ShapeType tells the validator to check the value as an optional T.
func (Nullable[T]) ShapeType() reflect.Type {
	return reflect.TypeOf((*T)(nil))
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if v, ok := n[true]; ok {
		return json.Marshal(v)
	}

	return []byte("null"), nil
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Null[T]()

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*n = NewNullable(v)

	return nil
}
