package tfunc

import (
	"fmt"
	"reflect"
	"strings"
)

// indent prefixes each non-empty line of a string with the given number of
// spaces. Used to nest multi-line values inside YAML blocks.
func indent(spaces int, s string) (string, error) {
	if spaces < 0 {
		return "", fmt.Errorf("indent value must be a positive integer")
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n"), nil
}

// join accepts the list as the last argument so it can be piped.
func join(sep string, a interface{}) (string, error) {
	switch v := a.(type) {
	case []string:
		return strings.Join(v, sep), nil
	case []interface{}:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, sep), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("join: unsupported type %T", a)
	}
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}

// replaceAll replaces all occurrences of f in s with t.
func replaceAll(f, t, s string) string {
	return strings.ReplaceAll(s, f, t)
}

// defaultValue returns def when v is nil, an empty string or any other zero
// value, v otherwise:
//
//	{{ .course.title | default "Untitled" }}
func defaultValue(def, v interface{}) interface{} {
	if v == nil {
		return def
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return def
		}
		return defaultValue(def, rv.Elem().Interface())
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		if rv.Len() == 0 {
			return def
		}
	}
	return v
}
