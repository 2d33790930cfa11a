package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/config"
)

func TestLoadManifestMissingFileYieldsDefault(t *testing.T) {
	dir := t.TempDir()

	m, err := config.LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, ".", m.Src)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `name: geometry
version: 1.2.0
src: src
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ManifestFileName), []byte(manifest), 0o644))

	m, err := config.LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "geometry", m.Name)
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, filepath.Join(dir, "src"), m.SourceDir(dir))
}

func TestLoadManifestFillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ManifestFileName), []byte("name: partial\n"), 0o644))

	m, err := config.LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "partial", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, ".", m.Src)
}

func TestLoadManifestMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ManifestFileName), []byte("name: [unclosed\n"), 0o644))

	_, err := config.LoadManifest(dir)
	assert.Error(t, err)
}

func TestIsSourceFile(t *testing.T) {
	assert.True(t, config.IsSourceFile("main.mica"))
	assert.True(t, config.IsSourceFile(filepath.Join("pkg", "geometry.mica")))
	assert.False(t, config.IsSourceFile("main.go"))
	assert.False(t, config.IsSourceFile("mica"))
	assert.False(t, config.IsSourceFile("notes.txt"))
}
