package coursesite

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadOverride reads and parses an override document. Files ending in .toml
// are parsed as TOML, anything else as YAML (which includes JSON).
func LoadOverride(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read override")
	}

	doc := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse override %s", path)
	}
	return doc, nil
}

// MergeOverride loads the override document at path, if any, and merges its
// top-level keys over base. Every override key replaces the base value
// wholesale, nested mappings included. base is not modified. keys are the
// sorted top-level keys of the override.
func MergeOverride(base Course, path string) (c Course, keys []string, err error) {
	if path == "" {
		return base, nil, nil
	}
	override, err := LoadOverride(path)
	if err != nil {
		return nil, nil, err
	}
	return Merge(base, override), overrideKeys(override), nil
}

// Merge returns a copy of base with the top-level keys of override set over
// it. There is no recursive merging: a nested mapping in override replaces
// the base mapping even if the base had other sub-keys.
func Merge(base Course, override map[string]interface{}) Course {
	out := base.Clone()
	if out == nil {
		out = make(Course, len(override))
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// overrideKeys returns the sorted top-level keys of an override document.
func overrideKeys(override map[string]interface{}) []string {
	keys := make([]string, 0, len(override))
	for k := range override {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
