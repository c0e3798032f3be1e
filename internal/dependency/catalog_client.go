package dependency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/coursesite/coursesite/dep"
	"github.com/pkg/errors"
)

const (
	// DefaultCatalogAddress is used when no catalog address is configured.
	DefaultCatalogAddress = "https://api.ucla.edu"

	// coursesPath is the collection endpoint, relative to the address.
	coursesPath = "/courses"

	appIDHeader  = "X-App-Id"
	appKeyHeader = "X-App-Key"

	maxCatalogResponseBytes = 5 * 1024 * 1024
)

var _ dep.CatalogAPI = (*CatalogClient)(nil)

// CatalogClient talks to the course catalog HTTP API.
type CatalogClient struct {
	address    *url.URL
	appID      string
	appKey     string
	httpClient *http.Client
}

// CatalogClientInput is the input structure for NewCatalogClient.
type CatalogClientInput struct {
	// Address is the base URL of the catalog API. DefaultCatalogAddress is
	// used when empty.
	Address string
	AppID   string
	AppKey  string
	// HttpClient is required.
	HttpClient *http.Client
}

// HTTPError carries the status and body of a non-2xx catalog response.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog: %s %s: status=%d body=%s",
		e.Method, e.URL, e.StatusCode, snippet(e.Body, 512))
}

// NewCatalogClient validates the address and returns a client.
func NewCatalogClient(i CatalogClientInput) (*CatalogClient, error) {
	raw := i.Address
	if raw == "" {
		raw = DefaultCatalogAddress
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid address")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported address scheme: %q", u.Scheme)
	}
	if i.HttpClient == nil {
		return nil, errors.New("missing http client")
	}
	return &CatalogClient{
		address:    u,
		appID:      i.AppID,
		appKey:     i.AppKey,
		httpClient: i.HttpClient,
	}, nil
}

// Courses queries the course collection with the given filter parameters and
// returns the decoded records in response order.
func (c *CatalogClient) Courses(ctx context.Context, filter url.Values) ([]map[string]interface{}, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, ErrMissingCredentials
	}

	u := *c.address
	u.Path = strings.TrimSuffix(u.Path, "/") + coursesPath
	u.RawQuery = filter.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(appIDHeader, c.appID)
	req.Header.Set(appKeyHeader, c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogResponseBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "catalog: read response")
	}
	if len(body) > maxCatalogResponseBytes {
		return nil, errors.New("catalog: response too large")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			Method:     req.Method,
			URL:        u.Path,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrapf(err, "catalog: decode response: %s", snippet(body, 512))
	}
	return records, nil
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
