package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieterich-lab/dorina/bed"
	"github.com/dieterich-lab/dorina/gff"
	"github.com/dieterich-lab/dorina/record"
)

func gffIv(chrom string, start, end int64) gff.Record {
	return gff.Record{Interval: record.Interval{Chrom: chrom, Start: start, End: end, Strand: record.StrandUnknown}}
}

func bedIv(chrom string, start, end int64, name string) bed.Record {
	return bed.Record{Interval: record.Interval{Chrom: chrom, Start: start, End: end, Strand: record.StrandUnknown}, Name: name}
}

func gffIvStranded(chrom string, start, end int64, strand record.Strand) gff.Record {
	return gff.Record{Interval: record.Interval{Chrom: chrom, Start: start, End: end, Strand: strand}}
}

func TestUnionPreservesLengthAndOrder(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 10, 20), gffIv("chr1", 0, 5)})
	b := New([]gff.Record{gffIv("chr1", 15, 25)})
	u := Union(a, b)
	require.True(t, u.IsSorted())
	assert.Len(t, u, len(a)+len(b))
}

func TestIntersectAnyEveryResultOverlapsB(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 0, 10), gffIv("chr1", 50, 60), gffIv("chr1", 100, 200)})
	b := New([]bed.Record{bedIv("chr1", 5, 15, "r1"), bedIv("chr1", 150, 160, "r2")})
	got := IntersectAny(a, b)
	require.Len(t, got, 2)
	for _, e := range got {
		span := e.Value.Span()
		overlapsSomeB := false
		for _, be := range b {
			if span.Overlaps(be.Value.Span()) {
				overlapsSomeB = true
			}
		}
		assert.True(t, overlapsSomeB)
	}
}

func TestIntersectAnyPairsOneRowPerWitness(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 0, 100)})
	b := New([]bed.Record{bedIv("chr1", 10, 20, "r1"), bedIv("chr1", 30, 40, "r2")})
	pairs := IntersectAnyPairs(a, b)
	assert.Len(t, pairs, 2)
}

func TestIntersectAllRequiresEveryStream(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 0, 100), gffIv("chr1", 200, 300)})
	r1 := New([]bed.Record{bedIv("chr1", 10, 20, "r1")})
	r2 := New([]bed.Record{bedIv("chr1", 250, 260, "r2")})
	got := IntersectAll(a, r1, r2)
	assert.Len(t, got, 0)

	r3 := New([]bed.Record{bedIv("chr1", 50, 60, "r3")})
	got = IntersectAll(a, r1, r3)
	require.Len(t, got, 1)
	assert.Equal(t, int64(0), got[0].Value.Span().Start)
}

func TestSubtractThenIntersectAnyIsEmpty(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 0, 10), gffIv("chr1", 50, 60)})
	b := New([]bed.Record{bedIv("chr1", 5, 15, "r1")})
	remainder := Subtract(a, b)
	assert.Empty(t, IntersectAny(remainder, b))
}

func TestSubtractStrandedKeepsOppositeStrandOverlap(t *testing.T) {
	a := New([]gff.Record{
		gffIvStranded("chr1", 0, 10, record.StrandPlus),
		gffIvStranded("chr1", 50, 60, record.StrandPlus),
	})
	b := New([]gff.Record{
		gffIvStranded("chr1", 5, 15, record.StrandMinus),
		gffIvStranded("chr1", 55, 65, record.StrandPlus),
	})
	got := SubtractStranded(a, b)
	require.Len(t, got, 1)
	assert.Equal(t, int64(0), got[0].Value.Span().Start)
}

func TestXorEquivalence(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 0, 10), gffIv("chr1", 50, 60)})
	b := New([]gff.Record{gffIv("chr1", 5, 15), gffIv("chr1", 100, 110)})

	direct := Union(Subtract(a, b), Subtract(b, a))

	unionAB := Union(a, b)
	aHitsB := IntersectAny(a, b)
	viaUnion := Subtract(unionAB, aHitsB)

	assert.ElementsMatch(t, direct.Values(), viaUnion.Values())
}

func TestSlopZeroIsNormalizingNoOp(t *testing.T) {
	sizes := ChromSizes{"chr1": 1000}
	a := New([]gff.Record{gffIv("chr1", 100, 200)})
	out, err := Slop(a, 0, sizes)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, a[0].Value.Span(), out[0].Value.Span())
}

func TestSlopNeverExceedsChromBounds(t *testing.T) {
	sizes := ChromSizes{"chr1": 50}
	a := New([]gff.Record{gffIv("chr1", 10, 20)})
	out, err := Slop(a, 1000, sizes)
	require.NoError(t, err)
	span := out[0].Value.Span()
	assert.Equal(t, int64(0), span.Start)
	assert.Equal(t, int64(50), span.End)
}

func TestSlopMissingChromosome(t *testing.T) {
	a := New([]gff.Record{gffIv("chrX", 10, 20)})
	_, err := Slop(a, 10, ChromSizes{"chr1": 100})
	require.Error(t, err)
	var missing *MissingChromosomeError
	assert.ErrorAs(t, err, &missing)
}

func TestProjectBED6Idempotent(t *testing.T) {
	a := New([]bed.Record{bedIv("chr1", 0, 10, "")})
	once := ProjectBED6(a)
	twice := ProjectBED6(once)
	assert.Equal(t, once.Values(), twice.Values())
}

func TestMergeAdjacentCoalescesTouchingIntervals(t *testing.T) {
	a := New([]gff.Record{gffIv("chr1", 0, 10), gffIv("chr1", 10, 20), gffIv("chr1", 100, 110)})
	merged := MergeAdjacent(a)
	require.Len(t, merged, 2)
	assert.Equal(t, int64(0), merged[0].Value.Span().Start)
	assert.Equal(t, int64(20), merged[0].Value.Span().End)
}
