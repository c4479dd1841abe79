package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dorina.cfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsDefaultSection(t *testing.T) {
	path := writeConfig(t, "[DEFAULT]\ndata_path = /test/data\norganism = homo_sapiens\nversion = 91\ntissue = brain\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/test/data", cfg.DataPath)
	assert.Equal(t, "homo_sapiens", cfg.Organism)
	assert.Equal(t, "91", cfg.Version)
	assert.Equal(t, "brain", cfg.Tissue)
}

func TestLoadExpandsHome(t *testing.T) {
	path := writeConfig(t, "[DEFAULT]\ndata_path = ~/dorina-data\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home+"/dorina-data", cfg.DataPath)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeConfig(t, "; a comment\n\n[DEFAULT]\n# another comment\ndata_path = /test/data\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/test/data", cfg.DataPath)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	path := writeConfig(t, "[DEFAULT]\nnot a key value line\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cfg"))
	require.Error(t, err)
}
