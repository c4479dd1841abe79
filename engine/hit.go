package engine

import (
	"strconv"

	"github.com/dieterich-lab/dorina/bed"
	"github.com/dieterich-lab/dorina/gff"
	"github.com/dieterich-lab/dorina/record"
)

// Hit is the unit of query output: an annotated region paired with the
// regulator interval that witnesses it (spec.md §3). A region can appear
// in several Hits, once per witnessing regulator (spec §4.5).
type Hit struct {
	Region    gff.Record
	Regulator bed.Record
}

// GeneID returns the region's ID= attribute, if any.
func (h Hit) GeneID() (string, bool) {
	return h.Region.ID()
}

// ToGFF renders h as the GFF-shaped output line spec.md §6 describes: the
// region's eight GFF columns, then an attributes column carrying at least
// ID=<gene-id>; regulator=<bed-name>; score=<bed-score>; start=<bed-start>;
// end=<bed-end>.
func (h Hit) ToGFF() gff.Record {
	out := h.Region
	attrs := append(record.Attrs(nil), h.Region.Attrs...)
	attrs = attrs.
		With("regulator", h.Regulator.Name).
		With("score", h.Regulator.Score).
		With("start", strconv.FormatInt(h.Regulator.Start, 10)).
		With("end", strconv.FormatInt(h.Regulator.End, 10))
	out.Attrs = attrs
	return out
}
