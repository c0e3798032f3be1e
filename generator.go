package coursesite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/coursesite/coursesite/events"
	"github.com/coursesite/coursesite/tfunc"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

const (
	// DefaultTemplatesDir is the directory, relative to the site directory,
	// templates are loaded from.
	DefaultTemplatesDir = "templates"

	// DefaultConfigTemplate and DefaultReadmeTemplate are the template file
	// names within the templates directory.
	DefaultConfigTemplate = "_config.yml.tmpl"
	DefaultReadmeTemplate = "README.md.tmpl"

	// ConfigFile and ReadmeFile are the generated files, written to the site
	// directory.
	ConfigFile = "_config.yml"
	ReadmeFile = "README.md"

	// OfferingsFile is optional; its raw text is handed to the README
	// template.
	OfferingsFile = "offerings.md"
)

// ConfigVars are the values, independent of course data, given to the
// config template as config_vars.
type ConfigVars struct {
	Author             string
	GoogleAnalyticsTag string
}

// Map returns the template view of the config vars.
func (v ConfigVars) Map() map[string]interface{} {
	return map[string]interface{}{
		"author":               v.Author,
		"google_analytics_tag": v.GoogleAnalyticsTag,
	}
}

// ConfigRenderError is returned when the config template fails to render.
// The command exits with status 1 on it.
type ConfigRenderError struct {
	Template string
	Course   Course
	Err      error
}

func (e *ConfigRenderError) Error() string {
	return fmt.Sprintf("render %s: %s", e.Template, e.Err)
}

func (e *ConfigRenderError) Unwrap() error { return e.Err }

// Cause supports errors.Cause from github.com/pkg/errors.
func (e *ConfigRenderError) Cause() error { return e.Err }

// Generator renders the config and README templates of a course site.
type Generator struct {
	templatesDir   string
	configTemplate string
	readmeTemplate string
	funcMapMerge   template.FuncMap
	backup         BackupFunc
	logger         hclog.Logger
	event          events.EventHandler
}

// GeneratorInput is the input structure for NewGenerator. Every field is
// optional.
type GeneratorInput struct {
	// TemplatesDir is relative to the directory given to Generate.
	TemplatesDir   string
	ConfigTemplate string
	ReadmeTemplate string

	// FuncMapMerge adds to or overrides the template functions. Defaults to
	// tfunc.Helpers(); the course filters are always available.
	FuncMapMerge template.FuncMap

	// Backup is called before an existing output file is replaced.
	Backup BackupFunc

	Logger       hclog.Logger
	EventHandler events.EventHandler
}

// NewGenerator returns a new Generator.
func NewGenerator(i GeneratorInput) *Generator {
	g := &Generator{
		templatesDir:   i.TemplatesDir,
		configTemplate: i.ConfigTemplate,
		readmeTemplate: i.ReadmeTemplate,
		funcMapMerge:   i.FuncMapMerge,
		backup:         i.Backup,
		logger:         i.Logger,
		event:          i.EventHandler,
	}
	if g.templatesDir == "" {
		g.templatesDir = DefaultTemplatesDir
	}
	if g.configTemplate == "" {
		g.configTemplate = DefaultConfigTemplate
	}
	if g.readmeTemplate == "" {
		g.readmeTemplate = DefaultReadmeTemplate
	}
	if g.funcMapMerge == nil {
		g.funcMapMerge = tfunc.Helpers()
	}
	if g.logger == nil {
		g.logger = hclog.NewNullLogger()
	}
	if g.event == nil {
		g.event = func(events.Event) {}
	}
	return g
}

// Generate renders the config and README templates found under
// <directory>/templates and writes _config.yml and README.md into directory.
//
// A course field a template references but the record lacks is a render
// error, never an empty or placeholder value. The config file is committed
// before the README is rendered; a README failure leaves the new _config.yml
// in place.
func (g *Generator) Generate(course Course, directory string, vars ConfigVars) error {
	configTmpl, err := g.load(directory, g.configTemplate, ConfigFile)
	if err != nil {
		return err
	}
	readmeTmpl, err := g.load(directory, g.readmeTemplate, ReadmeFile)
	if err != nil {
		return err
	}

	offerings, err := readOfferings(directory)
	if err != nil {
		return err
	}

	content, err := configTmpl.Execute(map[string]interface{}{
		"course":      map[string]interface{}(course),
		"config_vars": vars.Map(),
	})
	if err != nil {
		g.logger.Error("failed to render config template",
			"template", configTmpl.Path(), "error", err, "course", dump(course))
		return &ConfigRenderError{Template: configTmpl.Name(), Course: course, Err: err}
	}
	if err := g.write(configTmpl, filepath.Join(directory, ConfigFile), content); err != nil {
		return err
	}

	content, err = readmeTmpl.Execute(map[string]interface{}{
		"course":    map[string]interface{}(course),
		"offerings": offerings,
	})
	if err != nil {
		return errors.Wrapf(err, "render %s", readmeTmpl.Name())
	}
	if err := g.write(readmeTmpl, filepath.Join(directory, ReadmeFile), content); err != nil {
		return err
	}

	id := course.Identifier()
	g.logger.Info("generated course site", "course", id, "directory", directory)
	g.event(events.SiteGenerated{Directory: directory, Course: id})
	return nil
}

// load reads and parses a template, wiring its renderer to the output file.
func (g *Generator) load(directory, name, output string) (*Template, error) {
	path := filepath.Join(directory, g.templatesDir, name)
	t, err := LoadTemplate(path, TemplateInput{
		Name:          name,
		ErrMissingKey: true,
		FuncMapMerge:  g.funcMapMerge,
		Renderer: NewFileRenderer(FileRendererInput{
			Path:   filepath.Join(directory, output),
			Backup: g.backup,
		}),
	})
	if err != nil {
		return nil, err
	}
	g.logger.Debug("loaded template", "path", path)
	g.event(events.TemplateLoaded{Name: name, Path: path})
	return t, nil
}

func (g *Generator) write(t *Template, path string, content []byte) error {
	result, err := t.Render(content)
	if err != nil {
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	g.logger.Info("wrote file", "path", path, "changed", result.DidRender)
	g.event(events.FileRendered{Path: path, DidRender: result.DidRender})
	return nil
}

// readOfferings returns the contents of offerings.md, or nil when the file
// does not exist. An empty file gives a pointer to "".
func readOfferings(directory string) (*string, error) {
	data, err := os.ReadFile(filepath.Join(directory, OfferingsFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read offerings")
	}
	s := string(data)
	return &s, nil
}

// dump renders course data for diagnostics.
func dump(course Course) string {
	b, err := json.Marshal(course)
	if err != nil {
		return fmt.Sprintf("%v", map[string]interface{}(course))
	}
	return string(b)
}
