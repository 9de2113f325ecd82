package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestValidate checks defaults and format validations for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty config gets defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultRoot, cfg.Root)
	require.Equal(t, "tools/version.txt", cfg.VersionFile)
	require.Equal(t, []string{".js", ".html", ".css"}, cfg.Extensions)
	require.Equal(t, []string{".git", "terminals"}, cfg.ExcludeDirs)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// Explicitly empty exclusions stay empty.
	cfg = &Config{ExcludeDirs: []string{}}
	require.NoError(t, Validate(cfg))
	require.Empty(t, cfg.ExcludeDirs)

	// Extension without dot.
	require.ErrorIs(t, Validate(&Config{Extensions: []string{"js"}}), errBadExtension)

	// Nested exclusion.
	require.ErrorIs(t, Validate(&Config{ExcludeDirs: []string{"build/out"}}), errBadExcludeDir)

	// Unknown level.
	require.ErrorIs(t, Validate(&Config{LogLevel: "loud"}), errBadLogLevel)

	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)
}

// TestLoadRoundtrip ensures marshaled settings are loaded back unchanged.
func TestLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		Root:        "web",
		VersionFile: "/etc/site/version.txt",
		Extensions:  []string{".mjs"},
		ExcludeDirs: []string{"node_modules"},
		LogLevel:    "debug",
	}

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

// TestLoadMissingUsesDefaults ensures an absent settings file is not an error.
func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestLoadRejectsBadYAML surfaces decode errors.
func TestLoadRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

// TestVersionFilePath resolves relative and absolute locations.
func TestVersionFilePath(t *testing.T) {
	t.Parallel()

	cfg := &Config{Root: "site", VersionFile: "tools/version.txt"}
	require.Equal(t, filepath.Join("site", "tools", "version.txt"), cfg.VersionFilePath())

	abs := filepath.Join(t.TempDir(), "v.txt")
	cfg.VersionFile = abs
	require.Equal(t, abs, cfg.VersionFilePath())
}
