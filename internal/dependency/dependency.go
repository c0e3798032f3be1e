package dependency

import (
	"github.com/coursesite/coursesite/dep"
)

// This specifies all the fields internally required by dependencies.
// Used to validate interface implementations in each dependency file.
type isDependency interface {
	dep.Dependency
}

// respWithMetadata is a short wrapper to return the given records with their
// response metadata.
func respWithMetadata(records []map[string]interface{}) (interface{}, *dep.ResponseMetadata, error) {
	return records, &dep.ResponseMetadata{
		Count: len(records),
	}, nil
}
