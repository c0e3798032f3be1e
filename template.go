package coursesite

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"text/template"

	"github.com/coursesite/coursesite/tfunc"
	"github.com/pkg/errors"
)

// Template is the internal representation of an individual template to
// process. The template retains the relationship between its contents and
// is responsible for its own execution.
type Template struct {
	// template name, appended to ID
	name string

	// path the contents were read from; empty for inline templates
	path string

	// contents is the string contents for the template. It is either given
	// during template creation or read from disk when loaded.
	contents string

	// leftDelim and rightDelim are the template delimiters.
	leftDelim  string
	rightDelim string

	// hexMD5 stores the hex version of the MD5
	hexMD5 string

	// errMissingKey causes the template processing to exit immediately if a map
	// is indexed with a key that does not exist.
	errMissingKey bool

	// funcMapMerge a map of functions that add-to or override
	// those used when executing the template. (text/template)
	funcMapMerge template.FuncMap

	// Renderer is the default renderer used for this template
	renderer Renderer
}

// Renderer defines the interface used to render (output) a template.
// FileRenderer implements this to write to disk.
type Renderer interface {
	Render(contents []byte) (RenderResult, error)
}

// TemplateInput is used as input when creating the template.
type TemplateInput struct {
	// Optional name for the template. Appended to the ID. LoadTemplate
	// defaults it to the file name.
	Name string

	// Contents are the raw template contents. Ignored by LoadTemplate.
	Contents string

	// ErrMissingKey causes the template parser to exit immediately with an
	// error when a map is indexed with a key that does not exist.
	ErrMissingKey bool

	// LeftDelim and RightDelim are the template delimiters.
	LeftDelim  string
	RightDelim string

	// FuncMapMerge a map of functions that add-to or override those used when
	// executing the template. The course filters are always present unless
	// overridden here.
	FuncMapMerge template.FuncMap

	// Renderer is the default renderer used for this template
	Renderer Renderer
}

// NewTemplate creates a new Template from inline contents.
func NewTemplate(i TemplateInput) *Template {
	var t Template
	t.name = i.Name
	t.contents = i.Contents
	t.leftDelim = i.LeftDelim
	t.rightDelim = i.RightDelim
	t.errMissingKey = i.ErrMissingKey
	t.funcMapMerge = i.FuncMapMerge
	t.renderer = i.Renderer

	// Compute the MD5, encode as hex
	hash := md5.Sum([]byte(t.contents))
	t.hexMD5 = hex.EncodeToString(hash[:])

	return &t
}

// LoadTemplate reads the template at path and checks that it parses. Read
// errors are returned as is.
func LoadTemplate(path string, i TemplateInput) (*Template, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	i.Contents = string(contents)
	if i.Name == "" {
		i.Name = filepath.Base(path)
	}

	t := NewTemplate(i)
	t.path = path
	if _, err := t.parse(); err != nil {
		return nil, err
	}
	return t, nil
}

// ID returns the identifier for this template.
func (t *Template) ID() string {
	if t.name != "" {
		return t.hexMD5 + "_" + t.name
	}
	return t.hexMD5
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Path returns the file the template was loaded from, if any.
func (t *Template) Path() string {
	return t.path
}

// Render calls the stored Renderer with the passed content
func (t *Template) Render(content []byte) (RenderResult, error) {
	if t.renderer == nil {
		return RenderResult{}, errors.Errorf("template %s: no renderer", t.name)
	}
	return t.renderer.Render(content)
}

// Execute evaluates this template against data.
func (t *Template) Execute(data interface{}) ([]byte, error) {
	tmpl, err := t.parse()
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := tmpl.Execute(&b, data); err != nil {
		return nil, errors.Wrap(err, "execute")
	}
	return b.Bytes(), nil
}

func (t *Template) parse() (*template.Template, error) {
	tmpl := template.New(t.ID())
	tmpl.Delims(t.leftDelim, t.rightDelim)
	tmpl.Funcs(funcMap(t.funcMapMerge))

	if t.errMissingKey {
		tmpl.Option("missingkey=error")
	} else {
		tmpl.Option("missingkey=zero")
	}

	tmpl, err := tmpl.Parse(t.contents)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return tmpl, nil
}

// funcMap is the map of template functions to their respective functions.
func funcMap(merge template.FuncMap) template.FuncMap {
	r := tfunc.CourseFilters()
	for k, v := range merge {
		r[k] = v
	}
	return r
}
