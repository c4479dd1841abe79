package record

import "fmt"

// Strand is one of '+', '-', or '.' (unknown/unstranded).
type Strand byte

const (
	StrandPlus    Strand = '+'
	StrandMinus   Strand = '-'
	StrandUnknown Strand = '.'
)

// ParseStrand parses a single-character strand field. An empty field is
// read as unstranded, like "."; anything other than "+", "-", "." or the
// empty string is rejected so malformed input is caught at parse time.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return StrandPlus, nil
	case "-":
		return StrandMinus, nil
	case ".", "":
		return StrandUnknown, nil
	default:
		return StrandUnknown, fmt.Errorf("invalid strand %q", s)
	}
}

func (s Strand) String() string {
	if s == 0 {
		return "."
	}
	return string(s)
}

// Interval is a half-open genomic range, stored 0-based regardless of the
// source format's convention.
type Interval struct {
	Chrom  string
	Start  int64
	End    int64
	Strand Strand
}

// Valid reports whether Start <= End, the one invariant every codec enforces
// before returning a record to its caller.
func (iv Interval) Valid() bool {
	return iv.Start <= iv.End
}

// Len returns the interval's length in bases.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start
}

// Overlaps reports whether iv and other share at least one base, ignoring
// strand. This is the overlap test the core uses for region/regulator joins
// per spec §4.4.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Chrom == other.Chrom && iv.Start < other.End && other.Start < iv.End
}

// OverlapsStranded additionally requires matching strand; used only where
// strand-aware subtraction is explicitly requested (spec §4.4, §9 — region
// file provenance, out of scope for the core's own joins).
func (iv Interval) OverlapsStranded(other Interval) bool {
	return iv.Overlaps(other) && iv.Strand == other.Strand
}

// Less orders intervals by (Chrom, Start, End), the sort key every algebra
// operator in package algebra assumes its input streams already satisfy.
func (iv Interval) Less(other Interval) bool {
	if iv.Chrom != other.Chrom {
		return iv.Chrom < other.Chrom
	}
	if iv.Start != other.Start {
		return iv.Start < other.Start
	}
	return iv.End < other.End
}
