package bed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	lines := []string{
		"chr1\t250\t260\tPARCLIP#scifi*scifi_cds\t5\t+",
		"chr2\t10\t20",
		"chrX\t1\t2\tfoo\t0.5\t-\textra1\textra2",
	}
	for _, line := range lines {
		rec, err := parseLine(line, 1, "test.bed")
		require.NoError(t, err)
		assert.Equal(t, line, rec.String())
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	in := "# comment\n\nchr1\t0\t10\n"
	recs, err := NewReader(strings.NewReader(in), "in.bed").ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(0), recs[0].Start)
}

func TestParseRejectsBadCoordinates(t *testing.T) {
	_, err := parseLine("chr1\t10\t5", 3, "bad.bed")
	require.Error(t, err)

	_, err = parseLine("chr1\tNaN\t5", 4, "bad.bed")
	require.Error(t, err)
}

func TestProject6Defaults(t *testing.T) {
	rec, err := parseLine("chr1\t10\t20", 1, "in.bed")
	require.NoError(t, err)
	proj := rec.Project6()
	assert.Equal(t, ".", proj.Name)
	assert.Equal(t, "0", proj.Score)
	assert.Equal(t, "chr1\t10\t20\t.\t0\t.", proj.String())
}

func TestProject6Idempotent(t *testing.T) {
	rec, err := parseLine("chr1\t10\t20\tfoo\t5\t+\tfield1\tfield2", 1, "in.bed")
	require.NoError(t, err)
	once := rec.Project6()
	twice := once.Project6()
	assert.Equal(t, once, twice)
	assert.Empty(t, twice.Extra)
}
