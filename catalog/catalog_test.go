package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func buildFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "genomes", "human", "description.json"), `{"name":"Homo sapiens"}`)
	writeFile(t, filepath.Join(dir, "genomes", "human", "hg19", "all.gff"),
		"chr1\tdoRiNA2\tgene\t1\t100\t.\t+\t.\tID=gene1\n"+
			"chr1\tdoRiNA2\tgene\t200\t300\t.\t+\t.\tID=gene2\n")
	writeFile(t, filepath.Join(dir, "genomes", "human", "hg19", "hg19.genome"), "chr1\t1000000\nchr2\t500000\n")

	writeFile(t, filepath.Join(dir, "regulators", "human", "hg19", "pariclip.json"), `[{"id":"PARCLIP_AGO1"},{"id":"PARCLIP_AGO2"}]`)
	writeFile(t, filepath.Join(dir, "regulators", "human", "hg19", "pariclip.bed"), "chr1\t10\t20\tAGO1\t0\t+\n")
	writeFile(t, filepath.Join(dir, "regulators", "human", "hg19", "orphan.json"), `[{"id":"NO_BED"}]`)

	return dir
}

func TestLoadBuildsCatalog(t *testing.T) {
	dir := buildFixture(t)
	c, err := Load(dir)
	require.NoError(t, err)

	assembly, ok := c.LookupAssembly("hg19")
	require.True(t, ok)
	assert.Equal(t, "human", assembly.Species)
	assert.Equal(t, map[string]any{"name": "Homo sapiens"}, assembly.Description)
	assert.Equal(t, int64(1000000), assembly.ChromSizes["chr1"])

	rf, ok := assembly.Regions[RegionAny]
	require.True(t, ok)
	assert.False(t, rf.IsBED)
}

func TestLoadSkipsJSONWithoutSiblingBED(t *testing.T) {
	dir := buildFixture(t)
	c, err := Load(dir)
	require.NoError(t, err)

	_, ok := c.LookupRegulator("hg19", "NO_BED")
	assert.False(t, ok)

	e, ok := c.LookupRegulator("hg19", "PARCLIP_AGO1")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "regulators", "human", "hg19", "pariclip.bed"), e.BEDFile)
}

func TestLoadFailsOnUnreadableDataDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestAssemblyGenes(t *testing.T) {
	dir := buildFixture(t)
	c, err := Load(dir)
	require.NoError(t, err)

	assembly, ok := c.LookupAssembly("hg19")
	require.True(t, ok)

	genes, err := assembly.Genes(RegionAny)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gene1", "gene2"}, genes)
}
