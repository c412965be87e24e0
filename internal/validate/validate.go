package validate

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

var numericPattern = regexp.MustCompile(`^\s*-?\d+(\.\d+)?([eE][+-]?\d+)?\s*$`)

// Decode parses data and checks it against the shape of out, which must be a
// non-nil pointer. On success out holds the coerced record.
func Decode(data []byte, out interface{}) error {
	tree, err := json.UnmarshalTree(data)
	if err != nil {
		return gitlab.NewValidationError(gitlab.FieldViolation{
			Expectation: fmt.Sprintf("expected valid JSON: %v", err),
		})
	}

	return DecodeValue(tree, out)
}

// DecodeValue checks an already decoded value, such as tool arguments,
// against the shape of out.
func DecodeValue(v interface{}, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("validate: out must be a non-nil pointer, got %T", out)
	}

	normalized, violations := Check(v, rv.Elem().Type())
	if len(violations) > 0 {
		return gitlab.NewValidationError(violations...)
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("re-encoding validated value: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding validated value: %w", err)
	}

	return nil
}

// Check walks v against t and returns the coerced value together with every
// violation found.
func Check(v interface{}, t reflect.Type) (interface{}, []gitlab.FieldViolation) {
	c := &checker{}
	out := c.value(v, t, rule{}, "")

	return out, c.violations
}

type checker struct {
	violations []gitlab.FieldViolation
}

func (c *checker) fail(path, format string, args ...interface{}) {
	c.violations = append(c.violations, gitlab.FieldViolation{
		Path:        path,
		Expectation: fmt.Sprintf(format, args...),
	})
}

func (c *checker) value(v interface{}, t reflect.Type, r rule, path string) interface{} {
	t = shapeOf(t)

	if t.Kind() != reflect.Pointer && t.Implements(normalizerType) {
		v = reflect.Zero(t).Interface().(Normalizer).NormalizeShape(v)
	}

	if t.Kind() == reflect.Pointer {
		if v == nil {
			return nil
		}

		return c.value(v, t.Elem(), r, path)
	}

	if v == nil {
		switch t.Kind() {
		case reflect.Slice, reflect.Map, reflect.Interface:
			return nil
		default:
			c.fail(path, "expected %s, got null", describe(t))

			return nil
		}
	}

	switch t.Kind() {
	case reflect.String:
		return c.str(v, r, path)
	case reflect.Bool:
		return c.boolean(v, path)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.number(v, r, path, true)
	case reflect.Float32, reflect.Float64:
		return c.number(v, r, path, false)
	case reflect.Struct:
		return c.object(v, t, path)
	case reflect.Slice, reflect.Array:
		return c.list(v, t, r, path)
	case reflect.Map:
		return c.dict(v, t, path)
	default:
		return v
	}
}

func (c *checker) str(v interface{}, r rule, path string) interface{} {
	s, ok := v.(string)
	if !ok {
		c.fail(path, "expected string, got %s", typeName(v))

		return v
	}

	if len(r.enum) > 0 && !contains(r.enum, s) {
		c.fail(path, "expected one of [%s], got %q", strings.Join(r.enum, ", "), s)
	}

	return s
}

func (c *checker) boolean(v interface{}, path string) interface{} {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if lower := strings.ToLower(strings.TrimSpace(b)); lower == "true" || lower == "false" {
			coerced, err := cast.ToBoolE(lower)
			if err == nil {
				return coerced
			}
		}
	}

	c.fail(path, "expected boolean, got %s", typeName(v))

	return v
}

func (c *checker) number(v interface{}, r rule, path string, integer bool) interface{} {
	var f float64

	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			f = float64(i)
			if integer {
				return c.bounded(json.Number(strconv.FormatInt(i, 10)), f, r, path)
			}
		} else {
			parsed, err := n.Float64()
			if err != nil {
				c.fail(path, "expected number, got %q", n.String())

				return v
			}

			f = parsed
		}
	case string:
		if !numericPattern.MatchString(n) {
			c.fail(path, "expected number, got string %q", n)

			return v
		}

		parsed, err := cast.ToFloat64E(strings.TrimSpace(n))
		if err != nil {
			c.fail(path, "expected number, got string %q", n)

			return v
		}

		f = parsed
	case bool:
		c.fail(path, "expected number, got boolean")

		return v
	default:
		parsed, err := cast.ToFloat64E(v)
		if err != nil {
			c.fail(path, "expected number, got %s", typeName(v))

			return v
		}

		f = parsed
	}

	if integer {
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			c.fail(path, "expected integer, got %v", f)

			return v
		}

		return c.bounded(json.Number(strconv.FormatInt(int64(f), 10)), f, r, path)
	}

	return c.bounded(json.Number(strconv.FormatFloat(f, 'f', -1, 64)), f, r, path)
}

func (c *checker) bounded(out json.Number, f float64, r rule, path string) interface{} {
	if r.min != nil && f < *r.min {
		c.fail(path, "expected number >= %v, got %v", *r.min, f)
	}

	if r.max != nil && f > *r.max {
		c.fail(path, "expected number <= %v, got %v", *r.max, f)
	}

	return out
}

func (c *checker) object(v interface{}, t reflect.Type, path string) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		c.fail(path, "expected object, got %s", typeName(v))

		return v
	}

	out := make(map[string]interface{}, len(m))

	for _, f := range fieldsOf(t) {
		fieldPath := joinPath(path, f.name)

		raw, present := m[f.name]
		if !present || (raw == nil && shapeOf(f.typ).Kind() != reflect.Pointer) {
			switch {
			case f.rule.required:
				c.fail(fieldPath, "required field is missing")
			case f.rule.hasDef:
				out[f.name] = c.value(f.rule.defaultValue(), f.typ, f.rule, fieldPath)
			case present:
				out[f.name] = nil
			}

			continue
		}

		out[f.name] = c.value(raw, f.typ, f.rule, fieldPath)
	}

	return out
}

func (c *checker) list(v interface{}, t reflect.Type, r rule, path string) interface{} {
	items, ok := v.([]interface{})
	if !ok {
		c.fail(path, "expected array, got %s", typeName(v))

		return v
	}

	elemRule := rule{enum: r.enum, min: r.min, max: r.max}
	out := make([]interface{}, len(items))

	for i, item := range items {
		out[i] = c.value(item, t.Elem(), elemRule, fmt.Sprintf("%s[%d]", path, i))
	}

	return out
}

func (c *checker) dict(v interface{}, t reflect.Type, path string) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		c.fail(path, "expected object, got %s", typeName(v))

		return v
	}

	if t.Elem().Kind() == reflect.Interface {
		return m
	}

	out := make(map[string]interface{}, len(m))
	for k, item := range m {
		out[k] = c.value(item, t.Elem(), rule{}, joinPath(path, k))
	}

	return out
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}

	return false
}

func typeName(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", x)
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func describe(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}
