package validate

import (
	"reflect"

	"github.com/spf13/cast"
)

// Schema renders the JSON schema of t for tool input declarations.
func Schema(t reflect.Type) map[string]interface{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return schemaOf(t, rule{}, "")
}

// ObjectSchema splits the schema of struct type t into its properties and
// required field names.
func ObjectSchema(t reflect.Type) (map[string]interface{}, []string) {
	s := Schema(t)

	props, _ := s["properties"].(map[string]interface{})
	required, _ := s["required"].([]string)

	return props, required
}

func schemaOf(t reflect.Type, r rule, desc string) map[string]interface{} {
	t = shapeOf(t)

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	s := map[string]interface{}{}

	if describer, ok := reflect.Zero(t).Interface().(interface{ ShapeSchema() map[string]interface{} }); ok {
		s = describer.ShapeSchema()
	} else {
		switch t.Kind() {
		case reflect.String:
			s["type"] = "string"
			if len(r.enum) > 0 {
				s["enum"] = r.enum
			}
		case reflect.Bool:
			s["type"] = "boolean"
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			s["type"] = "integer"
		case reflect.Float32, reflect.Float64:
			s["type"] = "number"
		case reflect.Slice, reflect.Array:
			s["type"] = "array"
			s["items"] = schemaOf(t.Elem(), rule{enum: r.enum}, "")
		case reflect.Map:
			s["type"] = "object"
		case reflect.Struct:
			s["type"] = "object"

			props := map[string]interface{}{}

			var required []string

			for _, f := range fieldsOf(t) {
				props[f.name] = schemaOf(f.typ, f.rule, f.desc)
				if f.rule.required {
					required = append(required, f.name)
				}
			}

			s["properties"] = props
			if len(required) > 0 {
				s["required"] = required
			}
		}
	}

	if r.min != nil {
		s["minimum"] = *r.min
	}

	if r.max != nil {
		s["maximum"] = *r.max
	}

	if r.hasDef {
		s["default"] = typedDefault(s["type"], r)
	}

	if desc != "" {
		s["description"] = desc
	}

	return s
}

func typedDefault(kind interface{}, r rule) interface{} {
	def := r.def

	switch kind {
	case "integer":
		if i, err := cast.ToInt64E(def); err == nil {
			return i
		}
	case "number":
		if f, err := cast.ToFloat64E(def); err == nil {
			return f
		}
	case "boolean":
		if b, err := cast.ToBoolE(def); err == nil {
			return b
		}
	}

	return r.defaultValue()
}
