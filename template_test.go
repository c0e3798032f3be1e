package coursesite

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		i    TemplateInput
		e    *Template
	}{
		{
			"nil",
			TemplateInput{Name: "nil"},
			NewTemplate(TemplateInput{Name: "nil"}),
		},
		{
			"contents",
			TemplateInput{
				Name:     "test",
				Contents: "test",
			},
			&Template{
				name:     "test",
				contents: "test",
				hexMD5:   "098f6bcd4621d373cade4e832627b4f6",
			},
		},
		{
			"custom_delims",
			TemplateInput{
				Name:       "test",
				Contents:   "test",
				LeftDelim:  "<<",
				RightDelim: ">>",
			},
			&Template{
				name:       "test",
				contents:   "test",
				hexMD5:     "098f6bcd4621d373cade4e832627b4f6",
				leftDelim:  "<<",
				rightDelim: ">>",
			},
		},
		{
			"err_missing_key",
			TemplateInput{
				Name:          "test",
				Contents:      "test",
				ErrMissingKey: true,
			},
			&Template{
				name:          "test",
				contents:      "test",
				hexMD5:        "098f6bcd4621d373cade4e832627b4f6",
				errMissingKey: true,
			},
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			tmpl := NewTemplate(tc.i)
			if !reflect.DeepEqual(tc.e, tmpl) {
				t.Errorf("\nexp: %#v\nact: %#v", tc.e, tmpl)
			}
		})
	}
}

func TestTemplateID(t *testing.T) {
	t.Parallel()

	named := NewTemplate(TemplateInput{Name: "README.md.tmpl", Contents: "test"})
	assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6_README.md.tmpl", named.ID())

	anon := NewTemplate(TemplateInput{Contents: "test"})
	assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6", anon.ID())
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("defaults_name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "_config.yml.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("title: {{ .course.title }}"), 0644))

		tmpl, err := LoadTemplate(path, TemplateInput{})
		require.NoError(t, err)
		assert.Equal(t, "_config.yml.tmpl", tmpl.Name())
		assert.Equal(t, path, tmpl.Path())
	})

	t.Run("missing_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.tmpl")
		_, err := LoadTemplate(path, TemplateInput{})
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err), "read errors are returned as is")
	})

	t.Run("parse_error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{ if }"), 0644))

		_, err := LoadTemplate(path, TemplateInput{})
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "parse"))
	})

	t.Run("unknown_function", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{ nope .course }}"), 0644))

		_, err := LoadTemplate(path, TemplateInput{})
		assert.Error(t, err)
	})
}

func TestTemplateExecute(t *testing.T) {
	t.Parallel()

	course := map[string]interface{}{
		"title":       "Introduction to Computer Security",
		"subjectArea": "COM SCI",
		"catalogNumber": map[string]interface{}{
			"formatted": "C131A",
		},
	}

	cases := []struct {
		name string
		i    TemplateInput
		data interface{}
		e    string
		err  bool
	}{
		{
			"field",
			TemplateInput{Contents: `{{ .course.title }}`},
			map[string]interface{}{"course": course},
			"Introduction to Computer Security",
			false,
		},
		{
			"course_filters",
			TemplateInput{Contents: `{{ .course.catalogNumber.formatted | format_catalog_number }}` +
				` {{ format_subject_area_code_cap "COM" }}` +
				` {{ format_subject_area_code_lower .course.subjectArea }}`},
			map[string]interface{}{"course": course},
			"131a Com com sci",
			false,
		},
		{
			"custom_delims",
			TemplateInput{
				Contents:   `<< .course.title >>`,
				LeftDelim:  "<<",
				RightDelim: ">>",
			},
			map[string]interface{}{"course": course},
			"Introduction to Computer Security",
			false,
		},
		{
			"func_map_merge",
			TemplateInput{
				Contents: `{{ shout .course.title }}`,
				FuncMapMerge: template.FuncMap{
					"shout": strings.ToUpper,
				},
			},
			map[string]interface{}{"course": course},
			"INTRODUCTION TO COMPUTER SECURITY",
			false,
		},
		{
			"func_map_merge_overrides_filter",
			TemplateInput{
				Contents: `{{ format_catalog_number "C131A" }}`,
				FuncMapMerge: template.FuncMap{
					"format_catalog_number": func(s string) string { return s },
				},
			},
			nil,
			"C131A",
			false,
		},
		{
			"err_missing_key",
			TemplateInput{
				Contents:      `{{ .course.nope }}`,
				ErrMissingKey: true,
			},
			map[string]interface{}{"course": course},
			"",
			true,
		},
		{
			"nil_pointer_optional",
			TemplateInput{Contents: `{{ if .offerings }}yes{{ else }}no{{ end }}`},
			map[string]interface{}{"offerings": (*string)(nil)},
			"no",
			false,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			tmpl := NewTemplate(tc.i)
			out, err := tmpl.Execute(tc.data)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.e, string(out))
		})
	}
}

func TestTemplateRender(t *testing.T) {
	t.Parallel()

	t.Run("no_renderer", func(t *testing.T) {
		tmpl := NewTemplate(TemplateInput{Name: "x"})
		_, err := tmpl.Render([]byte("x"))
		assert.Error(t, err)
	})

	t.Run("file_renderer", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "README.md")
		tmpl := NewTemplate(TemplateInput{
			Name:     "README.md.tmpl",
			Renderer: NewFileRenderer(FileRendererInput{Path: path}),
		})
		result, err := tmpl.Render([]byte("# CS 131A"))
		require.NoError(t, err)
		assert.True(t, result.DidRender)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# CS 131A", string(got))
	})
}
