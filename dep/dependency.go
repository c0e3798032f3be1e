package dep

import (
	"context"
	"fmt"
	"net/url"
)

// Dependency is an interface for an external dependency to be fetched.
type Dependency interface {
	Fetch(context.Context, Clients) (interface{}, *ResponseMetadata, error)
	ID() string
	fmt.Stringer
}

// Clients interface for the API clients used for external dependency calls.
type Clients interface {
	Catalog() CatalogAPI
}

// CatalogAPI is the catalog service contract. Courses returns the course
// records matching the filter parameters in the order the service returned
// them. An empty, non-nil error result means nothing matched.
type CatalogAPI interface {
	Courses(ctx context.Context, filter url.Values) ([]map[string]interface{}, error)
}

// Metadata returned by external dependency Fetch-ing.
// Count is the number of records the service returned.
type ResponseMetadata struct {
	Count int
}
