package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".entity.ts", cfg.EntitySuffix)
	assert.Equal(t, []string{"ts"}, cfg.Targets)
	assert.Equal(t, "dto", cfg.GoPackage)
	assert.True(t, cfg.Policy.RelationsRequired)
	assert.True(t, cfg.Policy.PositiveNumbers)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nestdto.yaml")
	yaml := "targets:\n  - ts\n  - go\ngo_package: entities\npolicy:\n  positive_numbers: false\n  relations_required: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ts", "go"}, cfg.Targets)
	assert.Equal(t, "entities", cfg.GoPackage)
	assert.False(t, cfg.Policy.PositiveNumbers)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, ".entity.ts", cfg.EntitySuffix)
}

func TestLoadRejectsUnknownTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nestdto.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [java]\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestHasTarget(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.HasTarget("ts"))
	assert.False(t, cfg.HasTarget("go"))
}
