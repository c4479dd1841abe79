package gff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	line := "chr1\tdoRiNA2\tgene\t1\t1000\t.\t+\t.\tID=gene01.01"
	rec, err := parseLine(line, 1, "test.gff")
	require.NoError(t, err)
	assert.Equal(t, line, rec.String())
}

func TestParseConvertsToZeroBasedHalfOpen(t *testing.T) {
	rec, err := parseLine("chr1\tdoRiNA2\tCDS\t201\t300\t.\t+\t0\tID=gene01.01", 1, "t.gff")
	require.NoError(t, err)
	assert.Equal(t, int64(200), rec.Start)
	assert.Equal(t, int64(300), rec.End)
	id, ok := rec.ID()
	require.True(t, ok)
	assert.Equal(t, "gene01.01", id)
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	in := "# comment\n\nchr1\tx\tgene\t1\t10\t.\t+\t.\tID=g1\n"
	recs, err := NewReader(strings.NewReader(in), "in.gff").ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestParseRejectsWrongColumnCount(t *testing.T) {
	_, err := parseLine("chr1\tx\tgene\t1\t10", 1, "bad.gff")
	require.Error(t, err)
}

func TestParseRejectsBadCoordinates(t *testing.T) {
	_, err := parseLine("chr1\tx\tgene\t10\t5\t.\t+\t.\tID=g1", 1, "bad.gff")
	require.Error(t, err)
}
