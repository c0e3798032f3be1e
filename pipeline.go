package coursesite

import (
	"context"

	"github.com/coursesite/coursesite/events"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Pipeline resolves a course, applies the local override and generates the
// site files. It runs once per invocation.
type Pipeline struct {
	resolver  *Resolver
	generator *Generator
	logger    hclog.Logger
	event     events.EventHandler
}

// PipelineInput is the input structure for NewPipeline.
type PipelineInput struct {
	// Clients is the client set used to query the catalog. Required.
	Clients Looker

	// Generator options; zero values use the defaults of GeneratorInput.
	TemplatesDir string
	Backup       BackupFunc

	Logger       hclog.Logger
	EventHandler events.EventHandler
}

// RunInput holds the values of a single run. Every value is explicit; the
// pipeline does not read the environment.
type RunInput struct {
	SubjectArea   string
	CatalogNumber string

	// Directory is the site directory holding templates/ and receiving the
	// generated files.
	Directory string

	// OverridePath is the optional override document.
	OverridePath string

	ConfigVars ConfigVars
}

// NewPipeline returns a new Pipeline.
func NewPipeline(i PipelineInput) *Pipeline {
	logger := i.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	event := i.EventHandler
	if event == nil {
		event = func(events.Event) {}
	}
	return &Pipeline{
		resolver: NewResolver(ResolverInput{
			Clients:      i.Clients,
			Logger:       logger.Named("resolver"),
			EventHandler: event,
		}),
		generator: NewGenerator(GeneratorInput{
			TemplatesDir: i.TemplatesDir,
			Backup:       i.Backup,
			Logger:       logger.Named("generator"),
			EventHandler: event,
		}),
		logger: logger,
		event:  event,
	}
}

// Run executes resolve, merge and generate in order and stops at the first
// error.
func (p *Pipeline) Run(ctx context.Context, i RunInput) error {
	course, err := p.resolver.Resolve(ctx, ResolveInput{
		SubjectArea:   i.SubjectArea,
		CatalogNumber: i.CatalogNumber,
	})
	if err != nil {
		return err
	}

	if i.OverridePath != "" {
		var keys []string
		course, keys, err = MergeOverride(course, i.OverridePath)
		if err != nil {
			return err
		}
		p.logger.Debug("merged override", "path", i.OverridePath, "keys", keys)
		p.event(events.OverrideMerged{Path: i.OverridePath, Keys: keys})
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "generate")
	}
	return p.generator.Generate(course, i.Directory, i.ConfigVars)
}
