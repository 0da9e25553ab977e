package tool

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/tagly/format"
)

// schemaForTypeInternal returns a JSON schema fragment for t.
// inSlice suppresses the nullable marker on slice element pointers.
func schemaForTypeInternal(t reflect.Type, inSlice bool) map[string]interface{} {
	ret := make(map[string]interface{})
	if t == reflect.TypeOf(time.Time{}) {
		ret["type"] = "string"
		ret["format"] = "date-time"
		return ret
	}
	if t.Kind() == reflect.Ptr {
		ret = schemaForTypeInternal(t.Elem(), inSlice)
		if !inSlice {
			ret["nullable"] = true
		}
		return ret
	}
	switch t.Kind() {
	case reflect.Bool:
		ret["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ret["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		ret["type"] = "number"
	case reflect.String:
		ret["type"] = "string"
	case reflect.Slice, reflect.Array:
		ret["type"] = "array"
		ret["items"] = schemaForTypeInternal(t.Elem(), true)
	case reflect.Map:
		ret["type"] = "object"
		ret["additionalProperties"] = schemaForTypeInternal(t.Elem(), false)
	case reflect.Interface:
		// any JSON value
	case reflect.Struct:
		ret["type"] = "object"
		properties, required := structToProperties(t)
		ret["properties"] = properties
		if len(required) > 0 {
			ret["required"] = required
		}
	default:
		ret["type"] = "string"
	}
	return ret
}

// structToProperties converts struct fields into schema properties and the required field list.
// Pointer and omitempty fields are optional.
func structToProperties(t reflect.Type) (schema.ToolInputSchemaProperties, []string) {
	properties := make(schema.ToolInputSchemaProperties)
	var required []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, _ := format.Parse(field.Tag, "json", "format")
		if tag == nil {
			tag = &format.Tag{}
		}
		if tag.Ignore {
			continue
		}
		if field.Anonymous && tag.Name == "" && field.Type.Kind() == reflect.Struct {
			embedded, embeddedRequired := structToProperties(field.Type)
			for name, value := range embedded {
				properties[name] = value
			}
			required = append(required, embeddedRequired...)
			continue
		}
		fieldName := field.Name
		if tag.Name != "" {
			fieldName = tag.Name
		}
		fieldSchema := schemaForTypeInternal(field.Type, false)
		if tag.DateFormat != "" {
			fieldSchema["format"] = tag.DateFormat
		}
		if description := field.Tag.Get("description"); description != "" {
			fieldSchema["description"] = description
		}
		if choices := field.Tag.Get("choice"); choices != "" {
			fieldSchema["enum"] = splitChoices(choices)
		}
		properties[fieldName] = fieldSchema
		if field.Type.Kind() != reflect.Ptr && !tag.Omitempty {
			required = append(required, fieldName)
		}
	}
	return properties, required
}

// InputSchema derives a tool input schema from a struct (or pointer to struct) value.
func InputSchema(v any) (*schema.ToolInputSchema, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("expected a struct type, got nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct type, got %s", t.Kind())
	}
	properties, required := structToProperties(t)
	return &schema.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}, nil
}

func splitChoices(choices string) []string {
	return strings.FieldsFunc(choices, func(r rune) bool { return r == '|' })
}
