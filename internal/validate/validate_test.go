package validate_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/internal/validate"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

type author struct {
	ID       int    `json:"id"       shape:"required"`
	Username string `json:"username" shape:"required"`
}

type label string

func (label) NormalizeShape(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m["name"]
	}

	return v
}

type item struct {
	ID        int      `json:"id"         shape:"required"`
	State     string   `json:"state"      shape:"required,enum=opened|closed"`
	Author    author   `json:"author"     shape:"required"`
	Labels    []label  `json:"labels"`
	Milestone *author  `json:"milestone"`
	Weight    *float64 `json:"weight"`
	Draft     bool     `json:"draft"`
}

type ListArgs struct {
	ProjectID string   `json:"project_id" shape:"required"             desc:"Project ID or path"`
	Page      int      `json:"page"       shape:"default=1,min=1"`
	PerPage   int      `json:"per_page"   shape:"default=20,min=1,max=100"`
	Scope     []string `json:"scope"      shape:"enum=created|failed"`
}

type embedded struct {
	ListArgs
	Search string `json:"search"`
}

func violations(t *testing.T, err error) []gitlab.FieldViolation {
	t.Helper()

	var ge *gitlab.Error
	require.True(t, errors.As(err, &ge), "expected *gitlab.Error, got %v", err)
	assert.Equal(t, gitlab.KindValidation, ge.Kind)

	return ge.Violations
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("coerces numeric strings and drops unknown keys", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{"id":"42","state":"opened","author":{"id":7,"username":"ann"},` +
			`"labels":["bug",{"name":"ui"}],"milestone":null,"draft":"true","extra":1}`)

		var got item
		require.NoError(t, validate.Decode(data, &got))

		assert.Equal(t, 42, got.ID)
		assert.Equal(t, "ann", got.Author.Username)
		assert.Equal(t, []label{"bug", "ui"}, got.Labels)
		assert.Nil(t, got.Milestone)
		assert.True(t, got.Draft)
	})

	t.Run("reports nested paths", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[{"id":1,"state":"opened","author":{"id":1,"username":"a"}},` +
			`{"id":2,"state":"merged","author":{"username":"b"}}]`)

		var got []item
		v := violations(t, validate.Decode(data, &got))

		require.Len(t, v, 2)
		assert.Equal(t, "[1].state", v[0].Path)
		assert.Contains(t, v[0].Expectation, "opened, closed")
		assert.Equal(t, "[1].author.id", v[1].Path)
	})

	t.Run("rejects fractional integers", func(t *testing.T) {
		t.Parallel()

		var got item
		v := violations(t, validate.Decode([]byte(`{"id":1.5,"state":"opened","author":{"id":1,"username":"a"}}`), &got))

		require.Len(t, v, 1)
		assert.Equal(t, "id", v[0].Path)
		assert.Contains(t, v[0].Expectation, "integer")
	})

	t.Run("rejects non numeric strings", func(t *testing.T) {
		t.Parallel()

		var got item
		v := violations(t, validate.Decode([]byte(`{"id":"abc","state":"opened","author":{"id":1,"username":"a"}}`), &got))

		require.Len(t, v, 1)
		assert.Equal(t, "id", v[0].Path)
	})

	t.Run("null for a required scalar", func(t *testing.T) {
		t.Parallel()

		var got item
		v := violations(t, validate.Decode([]byte(`{"id":null,"state":"opened","author":{"id":1,"username":"a"}}`), &got))

		require.Len(t, v, 1)
		assert.Equal(t, "required field is missing", v[0].Expectation)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		var got item
		err := validate.Decode([]byte(`{`), &got)
		assert.True(t, gitlab.IsValidation(err))
	})
}

func TestDecodeValue(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		var args ListArgs
		require.NoError(t, validate.DecodeValue(map[string]interface{}{"project_id": "group/app"}, &args))

		assert.Equal(t, "group/app", args.ProjectID)
		assert.Equal(t, 1, args.Page)
		assert.Equal(t, 20, args.PerPage)
	})

	t.Run("accepts float64 from decoded tool arguments", func(t *testing.T) {
		t.Parallel()

		var args ListArgs
		require.NoError(t, validate.DecodeValue(map[string]interface{}{"project_id": "1", "per_page": float64(50)}, &args))

		assert.Equal(t, 50, args.PerPage)
	})

	t.Run("enforces bounds and enums", func(t *testing.T) {
		t.Parallel()

		var args ListArgs
		v := violations(t, validate.DecodeValue(map[string]interface{}{
			"per_page": "101",
			"scope":    []interface{}{"created", "bogus"},
		}, &args))

		require.Len(t, v, 3)
		assert.Equal(t, "project_id", v[0].Path)
		assert.Equal(t, "per_page", v[1].Path)
		assert.Equal(t, "scope[1]", v[2].Path)
	})

	t.Run("flattens embedded structs", func(t *testing.T) {
		t.Parallel()

		var args embedded
		require.NoError(t, validate.DecodeValue(map[string]interface{}{"project_id": "5", "search": "x"}, &args))

		assert.Equal(t, "5", args.ProjectID)
		assert.Equal(t, "x", args.Search)
		assert.Equal(t, 1, args.Page)
	})

	t.Run("requires a pointer", func(t *testing.T) {
		t.Parallel()

		var args ListArgs
		err := validate.DecodeValue(map[string]interface{}{}, args)
		require.Error(t, err)
		assert.False(t, gitlab.IsValidation(err))
	})
}

func TestSchema(t *testing.T) {
	t.Parallel()

	props, required := validate.ObjectSchema(reflect.TypeOf(embedded{}))

	assert.Equal(t, []string{"project_id"}, required)
	assert.Equal(t, map[string]interface{}{"type": "string", "description": "Project ID or path"}, props["project_id"])
	assert.Equal(t, map[string]interface{}{
		"type":    "integer",
		"minimum": float64(1),
		"maximum": float64(100),
		"default": int64(20),
	}, props["per_page"])
	assert.Equal(t, map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string", "enum": []string{"created", "failed"}},
	}, props["scope"])
	assert.Contains(t, props, "search")
}
