package regulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieterich-lab/dorina/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func buildCatalog(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "regulators", "human", "hg19", "parclip.json"),
		`[{"id":"PARCLIP_AGO1"},{"id":"PARCLIP_all"}]`)
	writeFile(t, filepath.Join(dir, "regulators", "human", "hg19", "parclip.bed"),
		"chr1\t10\t20\tAGO1*trackA\t0\t+\n"+
			"chr1\t30\t40\tAGO2*trackB\t0\t+\n"+
			"chr1\t50\t60\tAGO1\t0\t+\n")
	c, err := catalog.Load(dir)
	require.NoError(t, err)
	return c, dir
}

func TestResolveAppliesNameFilter(t *testing.T) {
	c, _ := buildCatalog(t)
	view, err := Resolve(c, "hg19", "PARCLIP_AGO1")
	require.NoError(t, err)
	assert.False(t, view.Custom)
	assert.Len(t, view.Stream, 2) // the "AGO1" record and the "AGO1*trackA" record, not "AGO2*trackB"
}

func TestResolveAllOptsOutOfFilter(t *testing.T) {
	c, _ := buildCatalog(t)
	view, err := Resolve(c, "hg19", "PARCLIP_all")
	require.NoError(t, err)
	assert.Len(t, view.Stream, 3)
}

func TestResolveUnknownRegulator(t *testing.T) {
	c, _ := buildCatalog(t)
	_, err := Resolve(c, "hg19", "NOT_A_REGULATOR")
	assert.Error(t, err)
}

func TestResolveCustomPath(t *testing.T) {
	dir := t.TempDir()
	bedPath := filepath.Join(dir, "my_custom.bed")
	writeFile(t, bedPath, "chr1\t1\t2\tx\t0\t+\n")
	c, err := catalog.Load(t.TempDir())
	require.NoError(t, err)

	view, err := Resolve(c, "hg19", filepath.Join(dir, "my_custom"))
	require.NoError(t, err)
	assert.True(t, view.Custom)
	assert.Len(t, view.Stream, 1)
}
