package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// TestAppID and TestAppKey are the credentials CatalogServer accepts.
const (
	TestAppID  = "test-app-id"
	TestAppKey = "test-app-key"
)

// CatalogServer is a fake catalog service. It answers GET /courses with the
// configured records and records the query of every request.
type CatalogServer struct {
	sync.Mutex
	*httptest.Server

	records []map[string]interface{}
	queries []url.Values
}

// NewCatalogServer starts a CatalogServer that is closed with the test.
// Requests without the test credentials get a 401.
func NewCatalogServer(t testing.TB, records []map[string]interface{}) *CatalogServer {
	t.Helper()
	s := &CatalogServer{records: records}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *CatalogServer) handle(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	s.queries = append(s.queries, r.URL.Query())
	records := s.records
	s.Unlock()

	if r.Method != http.MethodGet || r.URL.Path != "/courses" {
		http.NotFound(w, r)
		return
	}
	if r.Header.Get("X-App-Id") != TestAppID ||
		r.Header.Get("X-App-Key") != TestAppKey {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}
	if records == nil {
		records = []map[string]interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// Queries returns the query parameters of every request, in order.
func (s *CatalogServer) Queries() []url.Values {
	s.Lock()
	defer s.Unlock()
	return append([]url.Values(nil), s.queries...)
}

// WriteSite writes files, keyed by slash separated relative path, into a
// new temporary directory and returns it.
func WriteSite(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// ReadFile returns the contents of a file under dir, failing the test if it
// cannot be read.
func ReadFile(t testing.TB, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// Course returns a catalog record shaped like the catalog service returns
// them.
func Course(subjectArea, formatted, title string) map[string]interface{} {
	return map[string]interface{}{
		"subjectArea": subjectArea,
		"title":       title,
		"catalogNumber": map[string]interface{}{
			"prefix":    "",
			"number":    formatted,
			"suffix":    "",
			"formatted": formatted,
		},
	}
}
