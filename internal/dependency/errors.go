package dependency

import (
	"errors"
)

// ErrNoClient is returned when a dependency is fetched without the client it
// needs.
var ErrNoClient = errors.New("no client configured")

// ErrMissingCredentials is returned when a catalog request would be sent
// without an application id or key.
var ErrMissingCredentials = errors.New("catalog: missing app id or app key")

// CatalogAPIStatus contains information about a failed catalog response.
type CatalogAPIStatus struct {
	Code int
	Body string
}

// DecodeCatalogStatusError returns the decoded parameters from a catalog
// HTTPError as a CatalogAPIStatus.
func DecodeCatalogStatusError(err error) (CatalogAPIStatus, bool) {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return CatalogAPIStatus{herr.StatusCode, string(herr.Body)}, true
	}

	return CatalogAPIStatus{0, ""}, false
}
