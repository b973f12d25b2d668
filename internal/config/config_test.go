package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "package.json", cfg.Manifest)
	require.Equal(t, "dist", cfg.Output.Dir)
	require.False(t, cfg.Validation.StrictGroups)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "eon-styles", cfg.Inject.StyleID)
	require.Empty(t, cfg.Source)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eon.yaml")
	data := `manifest: meta/package.json
output:
  dir: build/tokens
validation:
  strict_groups: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "meta/package.json", cfg.Manifest)
	require.Equal(t, "build/tokens", cfg.Output.Dir)
	require.True(t, cfg.Validation.StrictGroups)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, path, cfg.Source)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EON_OUTPUT_DIR", "out")
	t.Setenv("EON_VALIDATION_STRICT_GROUPS", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "out", cfg.Output.Dir)
	require.True(t, cfg.Validation.StrictGroups)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Output.Dir = " "
	require.Error(t, cfg.Validate())
}
