package engine_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/hexil/engine"
	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
)

func TestParseApplicationConfig(t *testing.T) {
	cfg, err := engine.ParseApplicationConfig(strings.NewReader(`
[application]
name = "viewer"
version = "1.4.2"

[renderer]
power_profile = "efficient"
validation = true

[log]
level = "warn"
`))
	require.NoError(t, err)

	assert.Equal(t, "viewer", cfg.Application.Name)
	assert.Equal(t, metadata.Version{Major: 1, Minor: 4, Patch: 2}, cfg.Application.Version)
	assert.Equal(t, metadata.PowerProfileEfficient, cfg.Renderer.PowerProfile)
	assert.True(t, cfg.Renderer.Validation)
	assert.Equal(t, core.LogLevelWarn, cfg.Log.Level)
}

func TestParseApplicationConfigKeepsDefaults(t *testing.T) {
	cfg, err := engine.ParseApplicationConfig(strings.NewReader(`
[renderer]
power_profile = "efficient"
`))
	require.NoError(t, err)

	defaults := engine.DefaultApplicationConfig()
	assert.Equal(t, defaults.Application, cfg.Application)
	assert.Equal(t, defaults.Log, cfg.Log)
	assert.Equal(t, metadata.PowerProfileEfficient, cfg.Renderer.PowerProfile)
	assert.False(t, cfg.Renderer.Validation)
}

func TestParseApplicationConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "[renderer]\ngpu = \"fast\"\n"},
		{"unknown section", "[window]\nwidth = 800\n"},
		{"bad profile", "[renderer]\npower_profile = \"turbo\"\n"},
		{"bad level", "[log]\nlevel = \"chatty\"\n"},
		{"bad version", "[application]\nversion = \"one\"\n"},
		{"version suffix", "[application]\nversion = \"1.2.3-beta\"\n"},
		{"version minor too wide", "[application]\nversion = \"1.1024.0\"\n"},
		{"empty name", "[application]\nname = \"\"\n"},
		{"not toml", "renderer = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ParseApplicationConfig(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadApplicationConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := engine.LoadApplicationConfig(filepath.Join(dir, "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, engine.DefaultApplicationConfig(), cfg)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "hexil.toml")
		require.NoError(t, os.WriteFile(path, []byte("[renderer]\npower_profile = \"high-power\"\nvalidation = true\n"), 0o644))

		cfg, err := engine.LoadApplicationConfig(path)
		require.NoError(t, err)
		assert.Equal(t, metadata.PowerProfileHighPower, cfg.Renderer.PowerProfile)
		assert.True(t, cfg.Renderer.Validation)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = 3\n"), 0o644))

		_, err := engine.LoadApplicationConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
