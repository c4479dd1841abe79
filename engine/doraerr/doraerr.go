/*Package doraerr defines the engine's terminal error kinds as concrete Go
  types, one per failure named in spec.md: unknown assembly, unknown
  regulator, unknown region, a malformed record, a missing chromosome size,
  and an invalid query. Every kind maps to one of the two CLI exit codes in
  spec.md §6 (1 = user error, 2 = IO/catalog error) via ExitCode.
*/
package doraerr

import "fmt"

// UnknownAssemblyError is returned when a query names an assembly absent
// from the catalog.
type UnknownAssemblyError struct {
	Assembly string
}

func (e *UnknownAssemblyError) Error() string {
	return fmt.Sprintf("unknown assembly %q", e.Assembly)
}

// UnknownRegulatorError is returned when a non-custom regulator name has no
// (species, assembly, id) match in the catalog, or its backing BED is
// missing.
type UnknownRegulatorError struct {
	Assembly string
	Name     string
}

func (e *UnknownRegulatorError) Error() string {
	return fmt.Sprintf("unknown regulator %q for assembly %q", e.Name, e.Assembly)
}

// UnknownRegionError is returned when a query's region is not one of the
// six region kinds, or the requested assembly has no file for it.
type UnknownRegionError struct {
	Assembly string
	Region   string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region %q for assembly %q", e.Region, e.Assembly)
}

// MalformedRecordError wraps a record.MalformedError (or equivalent) as it
// surfaces from the engine, keeping the file/line context.
type MalformedRecordError struct {
	Cause error
}

func (e *MalformedRecordError) Error() string { return e.Cause.Error() }
func (e *MalformedRecordError) Unwrap() error { return e.Cause }

// MissingChromosomeError wraps an algebra.MissingChromosomeError as it
// surfaces from a windowed side computation.
type MissingChromosomeError struct {
	Cause error
}

func (e *MissingChromosomeError) Error() string { return e.Cause.Error() }
func (e *MissingChromosomeError) Unwrap() error { return e.Cause }

// InvalidQueryError covers query shapes the engine rejects: a missing
// assembly, an unrecognised match mode or combine operator, or a window
// below -1 (checked by engine.New before touching the catalog), and a
// match=any side with a window but no regulators (checked while that side
// is computed).
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string { return "invalid query: " + e.Reason }

// CatalogError wraps a failure loading the catalog itself (data_dir
// unreadable). ExitCode maps it to 2, as it does MalformedRecordError,
// MissingChromosomeError and any error not defined in this package.
type CatalogError struct {
	Cause error
}

func (e *CatalogError) Error() string { return e.Cause.Error() }
func (e *CatalogError) Unwrap() error { return e.Cause }

// ExitCode maps an engine error to the process exit code spec.md §6
// requires: 1 for user error (bad assembly/regulator/region/query shape),
// 2 for IO/catalog error, 0 if err is nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *UnknownAssemblyError, *UnknownRegulatorError, *UnknownRegionError, *InvalidQueryError:
		return 1
	default:
		return 2
	}
}
