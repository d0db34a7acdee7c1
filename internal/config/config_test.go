package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uqplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"gmt_bin: /opt/gmt/bin/gmt\ngrid_density: 200\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/gmt/bin/gmt", cfg.GMTBin)
	assert.Equal(t, 200, cfg.GridDensity)
	// untouched fields keep defaults
	assert.Equal(t, Default().PaperSize, cfg.PaperSize)
	assert.Equal(t, Default().MapWidth, cfg.MapWidth)
}

func TestLoad_RejectsNonYAMLExtension(t *testing.T) {
	_, err := Load("settings.json")
	assert.ErrorContains(t, err, ".yaml")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gmt_bin: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
