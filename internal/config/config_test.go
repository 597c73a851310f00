package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "CACHE McCLURE", cfg.Generator.Title)
	assert.Equal(t, "Science Fiction Author", cfg.Generator.Subtitle)
	assert.Equal(t, filepath.Join("public", "cache-mcclure-og.jpg"), cfg.Generator.OutputPath)
	assert.Equal(t, 90, cfg.Generator.Quality)
	assert.Equal(t, 90, cfg.Optimizer.Quality)
	assert.Zero(t, cfg.Optimizer.MaxWidth)
	assert.Len(t, cfg.Optimizer.Assets, 5)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generator:
  title: "OTHER TITLE"
optimizer:
  max_width: 1600
  assets:
    - path: img/one.png
      format: png
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "OTHER TITLE", cfg.Generator.Title)
	assert.Equal(t, "Science Fiction Author", cfg.Generator.Subtitle, "unset keys keep defaults")
	assert.Equal(t, 90, cfg.Generator.Quality)
	assert.Equal(t, 1600, cfg.Optimizer.MaxWidth)
	require.Len(t, cfg.Optimizer.Assets, 1)
	assert.Equal(t, Asset{Path: "img/one.png", Format: "png"}, cfg.Optimizer.Assets[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
