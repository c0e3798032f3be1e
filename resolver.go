package coursesite

import (
	"context"
	"fmt"

	"github.com/coursesite/coursesite/events"
	idep "github.com/coursesite/coursesite/internal/dependency"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// ErrNoCatalogClient is returned by Resolve when the client set has no
// catalog client configured.
var ErrNoCatalogClient = errors.New("no catalog client configured")

// NotFoundError is returned when the catalog service has no course matching
// the query. It carries the parameters that were searched for.
type NotFoundError struct {
	SubjectArea   string
	CatalogNumber string
}

func (e *NotFoundError) Error() string {
	if e.CatalogNumber == "" {
		return fmt.Sprintf("no course found for subject area %q", e.SubjectArea)
	}
	return fmt.Sprintf("no course found for subject area %q and catalog number %q",
		e.SubjectArea, e.CatalogNumber)
}

// Resolver selects a single course record from the catalog service.
type Resolver struct {
	clients Looker
	logger  hclog.Logger
	event   events.EventHandler
}

// ResolverInput is the input structure for NewResolver.
type ResolverInput struct {
	// Clients is the client set to communicate with the catalog.
	Clients Looker
	// Logger is optional, defaults to a null logger.
	Logger hclog.Logger
	// EventHandler is optional and receives resolution events.
	EventHandler events.EventHandler
}

// ResolveInput holds the course query parameters. SubjectArea is required;
// without a CatalogNumber the query may match several courses.
type ResolveInput struct {
	SubjectArea   string
	CatalogNumber string
}

// NewResolver returns a new Resolver.
func NewResolver(i ResolverInput) *Resolver {
	logger := i.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	event := i.EventHandler
	if event == nil {
		event = func(events.Event) {}
	}
	return &Resolver{
		clients: i.Clients,
		logger:  logger,
		event:   event,
	}
}

// Resolve issues a single catalog query and returns the first record in the
// order the service returned them. An empty result is a *NotFoundError.
func (r *Resolver) Resolve(ctx context.Context, i ResolveInput) (Course, error) {
	if r.clients == nil || r.clients.Catalog() == nil {
		return nil, ErrNoCatalogClient
	}

	q, err := idep.NewCatalogCoursesQuery(i.SubjectArea, i.CatalogNumber)
	if err != nil {
		return nil, err
	}

	records, err := r.fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, &NotFoundError{
			SubjectArea:   q.SubjectArea(),
			CatalogNumber: q.CatalogNumber(),
		}
	}

	course := Course(records[0])
	r.logger.Debug("resolved course", "query", q.ID(),
		"candidates", len(records), "course", course.Identifier(),
		"record", dump(course))
	r.event(events.CourseResolved{
		ID:         q.ID(),
		Course:     course.Identifier(),
		Candidates: len(records),
	})
	return course, nil
}

func (r *Resolver) fetch(ctx context.Context, d Dependency) ([]map[string]interface{}, error) {
	r.logger.Debug("querying catalog", "query", d.ID())
	r.event(events.Trace{ID: d.ID(), Message: "querying catalog"})
	data, _, err := d.Fetch(ctx, r.clients)
	if err != nil {
		if status, ok := idep.DecodeCatalogStatusError(err); ok {
			r.logger.Debug("catalog returned an error status", "query", d.ID(),
				"status", status.Code, "body", status.Body)
		}
		r.event(events.ServerError{ID: d.ID(), Error: err})
		return nil, err
	}
	r.event(events.ServerContacted{ID: d.ID()})

	records, ok := data.([]map[string]interface{})
	if !ok && data != nil {
		return nil, fmt.Errorf("%s: unexpected data type %T", d.ID(), data)
	}
	return records, nil
}
