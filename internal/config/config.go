package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/bump-version/internal/logger"
	"github.com/oshokin/bump-version/internal/repository/versionfile"
)

// Config holds the settings of a synchronization run.
type Config struct {
	// Root is the project directory scanned for asset files.
	Root string `yaml:"root"`
	// VersionFile is the version counter path, relative to Root unless absolute.
	VersionFile string `yaml:"version_file"`
	// Extensions lists the asset file suffixes eligible for rewriting.
	Extensions []string `yaml:"extensions"`
	// ExcludeDirs lists directory names skipped anywhere in the tree.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// LogLevel is the minimum level of diagnostic messages.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for run settings.
	DefaultConfigFilename = "bump-version.yaml"

	// DefaultRoot is the project root used when none is configured.
	DefaultRoot = "."

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// DefaultExtensions returns the script, markup, and stylesheet suffixes.
func DefaultExtensions() []string {
	return []string{".js", ".html", ".css"}
}

// DefaultExcludeDirs returns the version-control and generated-output directories.
func DefaultExcludeDirs() []string {
	return []string{".git", "terminals"}
}

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errBadExtension is returned for an extension without a leading dot.
	errBadExtension = errors.New("extension must start with a dot")
	// errBadExcludeDir is returned for an exclusion that is not a single path component.
	errBadExcludeDir = errors.New("excluded directory must be a single name")
	// errBadLogLevel is returned for an unrecognized log level.
	errBadLogLevel = errors.New("unknown log level")
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := new(Config)
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills defaults and checks the provided settings.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}

	if cfg.VersionFile == "" {
		cfg.VersionFile = versionfile.DefaultFilename
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions()
	}

	if cfg.ExcludeDirs == nil {
		cfg.ExcludeDirs = DefaultExcludeDirs()
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%q: %w", ext, errBadExtension)
		}
	}

	for _, dir := range cfg.ExcludeDirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("%q: %w", dir, errBadExcludeDir)
		}
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%q: %w", cfg.LogLevel, errBadLogLevel)
	}

	return nil
}

// VersionFilePath resolves the version file against the project root.
func (c *Config) VersionFilePath() string {
	if filepath.IsAbs(c.VersionFile) {
		return filepath.Clean(c.VersionFile)
	}

	return filepath.Join(c.Root, c.VersionFile)
}
