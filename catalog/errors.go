package catalog

import "github.com/grailbio/base/errors"

// newCatalogError builds the error Load returns for a data directory that
// could not be read at all.
// Everything else Load encounters (a malformed description.json, a JSON
// experiment file missing its BED, an unreadable species subdirectory) is
// non-fatal and only logged, per spec §4.2.
func newCatalogError(dir string, cause error) error {
	return errors.E(cause, "catalog: cannot read data directory", dir)
}
