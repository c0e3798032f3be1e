// Package command holds the coursesite command line: flag definitions,
// logger setup and the wiring of a single run.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coursesite/coursesite"
	"github.com/coursesite/coursesite/events"
	"github.com/coursesite/coursesite/internal/config"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Name is the program name used in usage output and log lines.
const Name = "coursesite"

// Description is the one line usage description.
const Description = "Generate a course site's _config.yml and README.md from the course catalog."

// CLI is the command line of coursesite.
type CLI struct {
	SubjectArea        string         `name:"subject-area" short:"s" required:"" help:"Subject area code of the course, e.g. \"COM SCI\"."`
	CatalogNumber      string         `name:"catalog-number" short:"n" help:"Catalog number of the course, e.g. C131A."`
	Directory          string         `name:"directory" short:"C" help:"Site directory holding templates/. Defaults to $GITHUB_WORKSPACE, then the working directory."`
	Author             optionalString `name:"author" placeholder:"STRING" help:"Site author. Defaults to $CONFIG_AUTHOR."`
	GoogleAnalyticsTag optionalString `name:"google-analytics-tag" placeholder:"STRING" help:"Google Analytics tag. Defaults to $GOOGLE_ANALYTICS_TAG."`
	CourseDataFile     string         `name:"course-data-file" aliases:"data" type:"existingfile" help:"Override document merged over the catalog record (YAML, JSON or TOML)."`
	Verbose            int            `name:"verbose" short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)."`
	EnvFile            []string       `name:"env-file" default:".env" help:"Dotenv files loaded before reading the environment. Missing files are skipped."`

	CatalogAddress string        `name:"catalog-address" help:"Catalog API base URL. Defaults to $CATALOG_ADDRESS, then ${default_catalog_address}."`
	Timeout        time.Duration `name:"timeout" default:"0s" help:"Limit for the catalog request, 0 waits indefinitely."`
	CACert         string        `name:"ca-cert" type:"existingfile" group:"TLS" help:"CA certificate file used to verify the catalog service."`
	CAPath         string        `name:"ca-path" type:"existingdir" group:"TLS" help:"Directory of CA certificates used to verify the catalog service."`
	ClientCert     string        `name:"client-cert" type:"existingfile" group:"TLS" help:"Client certificate presented to the catalog service."`
	ClientKey      string        `name:"client-key" type:"existingfile" group:"TLS" help:"Key of the client certificate."`
	TLSServerName  string        `name:"tls-server-name" group:"TLS" help:"Server name used to verify the catalog certificate."`
	TLSSkipVerify  bool          `name:"tls-skip-verify" group:"TLS" help:"Do not verify the catalog certificate."`

	Backup  bool             `name:"backup" help:"Keep a .bak copy of files that are replaced."`
	Version kong.VersionFlag `name:"version" help:"Show version and exit."`

	logger hclog.Logger `kong:"-"`
	output io.Writer    `kong:"-"`
}

// Vars are the interpolation variables the CLI help refers to.
func Vars(version string) kong.Vars {
	return kong.Vars{
		"version":                 version,
		"default_catalog_address": coursesite.DefaultCatalogAddress,
	}
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	output := c.output
	if output == nil {
		output = os.Stderr
	}
	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  LogLevel(c.Verbose),
		Output: output,
	})
	return nil
}

// LogLevel maps the -v count to a log level.
func LogLevel(verbose int) hclog.Level {
	switch {
	case verbose <= 0:
		return hclog.Warn
	case verbose == 1:
		return hclog.Info
	default:
		return hclog.Debug
	}
}

// Logger returns the logger set up by AfterApply, or a null logger.
func (c *CLI) Logger() hclog.Logger {
	if c.logger == nil {
		return hclog.NewNullLogger()
	}
	return c.logger
}

// Run loads the environment, resolves the settings and runs the pipeline
// once.
func (c *CLI) Run(ctx context.Context) error {
	logger := c.Logger()

	loaded, err := config.LoadEnvFiles(c.EnvFile...)
	if err != nil {
		return err
	}
	for _, p := range loaded {
		logger.Debug("loaded env file", "path", p)
	}

	env, err := config.LoadEnv()
	if err != nil {
		return errors.Wrap(err, "environment")
	}

	s, err := config.Resolve(c.settings(), env)
	if err != nil {
		return err
	}
	logger.Debug("resolved settings",
		"subject_area", s.SubjectArea,
		"catalog_number", s.CatalogNumber,
		"directory", s.Directory,
		"catalog_address", s.CatalogAddress)

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	clients := coursesite.NewClientSet()
	defer clients.Stop()
	if err := clients.AddCatalog(coursesite.CatalogInput{
		Address:   s.CatalogAddress,
		AppID:     s.AppID,
		AppKey:    s.AppKey,
		Transport: c.transport(),
	}); err != nil {
		return err
	}

	var backup coursesite.BackupFunc
	if c.Backup {
		backup = coursesite.Backup
	}

	p := coursesite.NewPipeline(coursesite.PipelineInput{
		Clients:      clients,
		Backup:       backup,
		Logger:       logger,
		EventHandler: eventLogger(logger.Named("events")),
	})
	return p.Run(ctx, coursesite.RunInput{
		SubjectArea:   s.SubjectArea,
		CatalogNumber: s.CatalogNumber,
		Directory:     s.Directory,
		OverridePath:  s.OverridePath,
		ConfigVars: coursesite.ConfigVars{
			Author:             s.Author,
			GoogleAnalyticsTag: s.GoogleAnalyticsTag,
		},
	})
}

func (c *CLI) settings() config.Settings {
	return config.Settings{
		SubjectArea:           c.SubjectArea,
		CatalogNumber:         c.CatalogNumber,
		Directory:             c.Directory,
		OverridePath:          c.CourseDataFile,
		Author:                c.Author.Value,
		AuthorSet:             c.Author.Set,
		GoogleAnalyticsTag:    c.GoogleAnalyticsTag.Value,
		GoogleAnalyticsTagSet: c.GoogleAnalyticsTag.Set,
		CatalogAddress:        c.CatalogAddress,
	}
}

// optionalString is a string flag that records whether it was given, so an
// explicit empty value is kept over the environment default.
type optionalString struct {
	Value string
	Set   bool
}

// Decode implements kong.MapperValue.
func (s *optionalString) Decode(ctx *kong.DecodeContext) error {
	if err := ctx.Scan.PopValueInto("string", &s.Value); err != nil {
		return err
	}
	s.Set = true
	return nil
}

func (c *CLI) transport() coursesite.TransportInput {
	return coursesite.TransportInput{
		SSLEnabled: c.CACert != "" || c.CAPath != "" || c.ClientCert != "" ||
			c.TLSServerName != "" || c.TLSSkipVerify,
		SSLVerify:  !c.TLSSkipVerify,
		SSLCert:    c.ClientCert,
		SSLKey:     c.ClientKey,
		SSLCACert:  c.CACert,
		SSLCAPath:  c.CAPath,
		ServerName: c.TLSServerName,
	}
}

// eventLogger traces every event.
func eventLogger(logger hclog.Logger) events.EventHandler {
	return func(e events.Event) {
		logger.Trace(fmt.Sprintf("%T", e), "event", fmt.Sprintf("%+v", e))
	}
}
