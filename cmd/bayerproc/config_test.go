package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 2048\nheight: 2050\npatch: 16\ncfa: GRBG\n"), 0o644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.Width)
	assert.Equal(t, 2050, cfg.Height)
	assert.Equal(t, 16, cfg.Patch)
	assert.Equal(t, "GRBG", cfg.CFA)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [oops"), 0o644))

	_, err := loadConfigFile(path)
	assert.Error(t, err)
}

func TestPngLevel(t *testing.T) {
	assert.Equal(t, png.NoCompression, pngLevel(0))
	assert.Equal(t, png.BestSpeed, pngLevel(3))
	assert.Equal(t, png.DefaultCompression, pngLevel(5))
	assert.Equal(t, png.BestCompression, pngLevel(9))
}
