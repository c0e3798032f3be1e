package tfunc

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// toLower converts the given string (usually by a pipe) to lowercase.
func toLower(s string) string {
	return strings.ToLower(s)
}

// toUpper converts the given string (usually by a pipe) to uppercase.
func toUpper(s string) string {
	return strings.ToUpper(s)
}

// toJSON converts the given structure into a deeply nested JSON string.
// Strings come out quoted, which makes it a safe way to emit scalar values
// into YAML.
func toJSON(i interface{}) (string, error) {
	result, err := json.Marshal(i)
	if err != nil {
		return "", errors.Wrap(err, "toJSON")
	}
	return string(bytes.TrimSpace(result)), nil
}

// toYAML converts the given structure into a deeply nested YAML string.
func toYAML(i interface{}) (string, error) {
	result, err := yaml.Marshal(i)
	if err != nil {
		return "", errors.Wrap(err, "toYAML")
	}
	return string(bytes.TrimSpace(result)), nil
}

// toTOML converts the given map into a TOML document.
func toTOML(m map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return "", errors.Wrap(err, "toTOML")
	}
	return string(bytes.TrimSpace(buf.Bytes())), nil
}
