package coursesite

import "github.com/coursesite/coursesite/dep"

// Dependency is an external data dependency, the catalog course query being
// the one this package fetches.
type Dependency dep.Dependency
