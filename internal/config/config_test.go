package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"snake-maze/internal/config"
)

func TestDefaultMatchesSolverDefaults(t *testing.T) {
	cfg := config.Default()

	require.Equal(t, "full", cfg.DefaultSearch)
	require.False(t, cfg.ForceUnbounded)
	require.False(t, cfg.IgnoreTimeout)
	require.False(t, cfg.FullPrecision)
}

func TestLoadWithNoPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
timeout: 10s
full_precision: true
default_search: astar
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "astar", cfg.DefaultSearch)
	require.True(t, cfg.FullPrecision)
	require.Equal(t, "10s", cfg.Timeout.String())
}

func TestLoadRejectsUnboundedFullPrecisionWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ignore_timeout: true
full_precision: true
`), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadAllowsUnboundedFullPrecisionWithForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ignore_timeout: true
full_precision: true
force_unbounded: true
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.IgnoreTimeout)
	require.True(t, cfg.ForceUnbounded)
}
