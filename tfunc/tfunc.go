package tfunc

import (
	"text/template"
)

// All available template functions
func All() template.FuncMap {
	all := make(template.FuncMap)
	allfuncs := []func() template.FuncMap{CourseFilters, Helpers}
	for _, f := range allfuncs {
		for k, v := range f() {
			all[k] = v
		}
	}
	return all
}

// CourseFilters are the course formatting filters. The names are part of the
// template contract and must not change.
func CourseFilters() template.FuncMap {
	return template.FuncMap{
		"format_catalog_number":          FormatCatalogNumber,
		"format_subject_area_code_cap":   FormatSubjectAreaCodeCap,
		"format_subject_area_code_lower": FormatSubjectAreaCodeLower,
	}
}

// Helpers are general purpose functions for the values a course record
// carries.
func Helpers() template.FuncMap {
	return template.FuncMap{
		// ToSomething
		"toLower": toLower,
		"toUpper": toUpper,
		"toJSON":  toJSON,
		"toYAML":  toYAML,
		"toTOML":  toTOML,
		// String
		"join":       join,
		"trimSpace":  trimSpace,
		"indent":     indent,
		"replaceAll": replaceAll,
		"default":    defaultValue,
		// Data type (map, slice, etc) oriented
		"mergeMap":             mergeMap,
		"mergeMapWithOverride": mergeMapWithOverride,
	}
}
