package gff

import (
	"github.com/dieterich-lab/dorina/bed"
	"github.com/dieterich-lab/dorina/record"
)

// FromBED synthesizes a GFF3-shaped region record from a BED record, for
// the intergenic.bed variant noted in spec §9 ("in one source variant,
// intergenic files are .gff; in another .bed"). The BED name column becomes
// the "ID=" attribute so downstream --genes filtering and hit rendering
// behave identically regardless of which file format backed the region.
func FromBED(rec bed.Record, feature string) Record {
	attrs := record.Attrs{{Key: "ID", Value: rec.Name}}
	return Record{
		Interval: rec.Interval,
		Feature:  feature,
		Score:    rec.Score,
		Attrs:    attrs,
		LineNo:   rec.LineNo,
		SrcFile:  rec.SrcFile,
	}
}
