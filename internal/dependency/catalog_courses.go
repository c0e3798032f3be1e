package dependency

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/coursesite/coursesite/dep"
	"github.com/pkg/errors"
)

const (
	subjectAreaParam   = "subject-area-code"
	catalogNumberParam = "catalog-number"
)

var (
	// Ensure implements
	_ isDependency = (*CatalogCoursesQuery)(nil)
)

// CatalogCoursesQuery is the representation of a course lookup against the
// catalog service, filtered by subject area and optionally catalog number.
type CatalogCoursesQuery struct {
	subjectArea   string
	catalogNumber string
}

// NewCatalogCoursesQuery creates a course query. The subject area is
// required; an empty catalog number leaves the query unconstrained by number.
// Both values are sent as given.
func NewCatalogCoursesQuery(subjectArea, catalogNumber string) (*CatalogCoursesQuery, error) {
	if strings.TrimSpace(subjectArea) == "" {
		return nil, fmt.Errorf("catalog.courses: missing subject area")
	}
	return &CatalogCoursesQuery{
		subjectArea:   subjectArea,
		catalogNumber: catalogNumber,
	}, nil
}

// SubjectArea returns the subject area code filter.
func (d *CatalogCoursesQuery) SubjectArea() string {
	return d.subjectArea
}

// CatalogNumber returns the catalog number filter, possibly empty.
func (d *CatalogCoursesQuery) CatalogNumber() string {
	return d.catalogNumber
}

// Params returns the filter parameters sent to the catalog service.
func (d *CatalogCoursesQuery) Params() url.Values {
	v := url.Values{}
	v.Set(subjectAreaParam, d.subjectArea)
	if d.catalogNumber != "" {
		v.Set(catalogNumberParam, d.catalogNumber)
	}
	return v
}

// Fetch queries the catalog API defined by the given client and returns the
// matching course records in the order the service returned them.
func (d *CatalogCoursesQuery) Fetch(ctx context.Context, clients dep.Clients) (interface{}, *dep.ResponseMetadata, error) {
	if clients == nil || clients.Catalog() == nil {
		return nil, nil, errors.Wrap(ErrNoClient, d.ID())
	}

	records, err := clients.Catalog().Courses(ctx, d.Params())
	if err != nil {
		return nil, nil, errors.Wrap(err, d.ID())
	}

	return respWithMetadata(records)
}

// ID returns the human-friendly version of this dependency.
func (d *CatalogCoursesQuery) ID() string {
	if d.catalogNumber == "" {
		return fmt.Sprintf("catalog.courses(%s)", d.subjectArea)
	}
	return fmt.Sprintf("catalog.courses(%s %s)", d.subjectArea, d.catalogNumber)
}

// Stringer interface reuses ID
func (d *CatalogCoursesQuery) String() string {
	return d.ID()
}
