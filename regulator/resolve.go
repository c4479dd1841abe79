package regulator

import (
	"os"
	"strings"

	"github.com/dieterich-lab/dorina/algebra"
	"github.com/dieterich-lab/dorina/bed"
	"github.com/dieterich-lab/dorina/catalog"
	"github.com/dieterich-lab/dorina/engine/doraerr"
)

// View is a resolved regulator: its BED6-projected, name-filtered interval
// stream plus provenance for diagnostics.
type View struct {
	Name       string
	Custom     bool
	Experiment *catalog.Experiment // nil when Custom
	Stream     algebra.Stream[bed.Record]
}

// Resolve implements spec.md §4.3's resolve(name, assembly) contract.
func Resolve(c *catalog.Catalog, assembly, name string) (*View, error) {
	if isPath(name) {
		return resolveCustom(name)
	}
	return resolveCatalog(c, assembly, name)
}

func isPath(name string) bool {
	return strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator)
}

func resolveCustom(stem string) (*View, error) {
	path := stem
	if !strings.HasSuffix(path, ".bed") {
		path += ".bed"
	}
	recs, err := bed.ReadPath(path)
	if err != nil {
		return nil, &doraerr.MalformedRecordError{Cause: err}
	}
	stream := algebra.ProjectBED6(algebra.New(recs))
	return &View{Name: stem, Custom: true, Stream: stream}, nil
}

func resolveCatalog(c *catalog.Catalog, assembly, name string) (*View, error) {
	exp, ok := c.LookupRegulator(assembly, name)
	if !ok {
		return nil, &doraerr.UnknownRegulatorError{Assembly: assembly, Name: name}
	}
	if _, err := os.Stat(exp.BEDFile); err != nil {
		return nil, &doraerr.UnknownRegulatorError{Assembly: assembly, Name: name}
	}
	recs, err := bed.ReadPath(exp.BEDFile)
	if err != nil {
		return nil, &doraerr.MalformedRecordError{Cause: err}
	}

	filtered := recs
	if !strings.Contains(name, "_all") {
		predicate := predicateFor(name)
		filtered = filterByName(recs, predicate)
	}

	stream := algebra.ProjectBED6(algebra.New(filtered))
	return &View{Name: name, Custom: false, Experiment: exp, Stream: stream}, nil
}

// predicateFor strips a leading "<prefix>_" (everything up to and
// including the first underscore) from a regulator id, per spec §4.3.
func predicateFor(name string) string {
	if idx := strings.IndexByte(name, '_'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// filterByName keeps records whose BED name field equals predicate, or
// contains predicate followed by "*" (spec §4.3; matches the source's
// "(name + '*' in rec.name) or (name == rec.name)").
func filterByName(recs []bed.Record, predicate string) []bed.Record {
	star := predicate + "*"
	var out []bed.Record
	for _, r := range recs {
		if r.Name == predicate || strings.Contains(r.Name, star) {
			out = append(out, r)
		}
	}
	return out
}
