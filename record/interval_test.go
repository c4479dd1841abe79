package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsStrandedRequiresMatchingStrand(t *testing.T) {
	a := Interval{Chrom: "chr1", Start: 0, End: 10, Strand: StrandPlus}
	sameStrand := Interval{Chrom: "chr1", Start: 5, End: 15, Strand: StrandPlus}
	oppositeStrand := Interval{Chrom: "chr1", Start: 5, End: 15, Strand: StrandMinus}

	assert.True(t, a.Overlaps(sameStrand))
	assert.True(t, a.OverlapsStranded(sameStrand))

	assert.True(t, a.Overlaps(oppositeStrand))
	assert.False(t, a.OverlapsStranded(oppositeStrand))
}

func TestOverlapsStrandedFalseWhenSpansDontOverlap(t *testing.T) {
	a := Interval{Chrom: "chr1", Start: 0, End: 10, Strand: StrandPlus}
	disjoint := Interval{Chrom: "chr1", Start: 20, End: 30, Strand: StrandPlus}
	assert.False(t, a.OverlapsStranded(disjoint))
}
