package dependency

import (
	"context"
	"net/url"
	"sync"

	"github.com/coursesite/coursesite/dep"
)

// FakeCatalog is a fake catalog API that does not actually speak to a
// server. It records every filter it was queried with.
type FakeCatalog struct {
	sync.Mutex

	Records []map[string]interface{}
	Err     error

	queries []url.Values
}

var (
	_ dep.CatalogAPI = (*FakeCatalog)(nil)
	_ dep.Clients    = (*FakeClients)(nil)
)

// Courses returns the configured records or error.
func (f *FakeCatalog) Courses(_ context.Context, filter url.Values) ([]map[string]interface{}, error) {
	f.Lock()
	defer f.Unlock()
	f.queries = append(f.queries, filter)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Records, nil
}

// Queries returns the filters Courses was called with, in call order.
func (f *FakeCatalog) Queries() []url.Values {
	f.Lock()
	defer f.Unlock()
	return append([]url.Values(nil), f.queries...)
}

// FakeClients is a dep.Clients backed by a FakeCatalog.
type FakeClients struct {
	Fake *FakeCatalog
}

func (c FakeClients) Catalog() dep.CatalogAPI {
	if c.Fake == nil {
		return nil
	}
	return c.Fake
}

func (FakeClients) Stop() {}
