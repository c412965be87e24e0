// Package validate checks untyped JSON against the shape declared by a Go
// struct, coercing loosely typed values along the way.
//
// A shape is read from struct tags:
//
//	json:"name,omitempty"   field name; "-" excludes the field
//	shape:"required"        the key must be present and non-null
//	shape:"default=v"       value applied when the key is absent
//	shape:"enum=a|b|c"      allowed string values (element-wise for slices)
//	shape:"min=1,max=100"   numeric bounds
//	desc:"..."              description used by Schema
//
// Before checking, numeric-looking strings are coerced into numeric fields and
// "true"/"false" into bool fields. Every violation is collected with its path.
// Keys that the shape does not declare are dropped.
package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/spf13/cast"
)

// Normalizer lets a type rewrite its raw value before it is checked, e.g. to
// accept either a string or an object carrying that string.
type Normalizer interface {
	NormalizeShape(v interface{}) interface{}
}

var normalizerType = reflect.TypeOf((*Normalizer)(nil)).Elem()

// ShapeTyper lets a wrapper type be checked as another type, e.g. a nullable
// request field checked as a pointer to its value type.
type ShapeTyper interface {
	ShapeType() reflect.Type
}

// shapeOf resolves t through ShapeTyper.
func shapeOf(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Interface {
		return t
	}

	if st, ok := reflect.Zero(t).Interface().(ShapeTyper); ok {
		return st.ShapeType()
	}

	return t
}

type rule struct {
	required bool
	hasDef   bool
	def      string
	enum     []string
	min      *float64
	max      *float64
}

type field struct {
	name  string
	index []int
	typ   reflect.Type
	rule  rule
	desc  string
}

var fieldCache sync.Map // reflect.Type -> []field

// fieldsOf returns the JSON-visible fields of t, flattening embedded structs
// the way encoding/json does.
func fieldsOf(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}

	var fields []field

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			for _, inner := range fieldsOf(sf.Type) {
				inner.index = append([]int{i}, inner.index...)
				fields = append(fields, inner)
			}

			continue
		}

		if !sf.IsExported() {
			continue
		}

		if name == "" {
			name = sf.Name
		}

		fields = append(fields, field{
			name:  name,
			index: []int{i},
			typ:   sf.Type,
			rule:  parseRule(sf.Tag.Get("shape")),
			desc:  sf.Tag.Get("desc"),
		})
	}

	fieldCache.Store(t, fields)

	return fields
}

func parseRule(tag string) rule {
	var r rule

	if tag == "" {
		return r
	}

	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")

		switch key {
		case "required":
			r.required = true
		case "default":
			r.hasDef = true
			r.def = value
		case "enum":
			r.enum = strings.Split(value, "|")
		case "min":
			if f, err := cast.ToFloat64E(value); err == nil {
				r.min = &f
			}
		case "max":
			if f, err := cast.ToFloat64E(value); err == nil {
				r.max = &f
			}
		}
	}

	return r
}

// defaultValue returns the raw default; "[]" and "{}" stand for an empty
// array and object.
func (r rule) defaultValue() interface{} {
	switch r.def {
	case "[]":
		return []interface{}{}
	case "{}":
		return map[string]interface{}{}
	default:
		return r.def
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}
