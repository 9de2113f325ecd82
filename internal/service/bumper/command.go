package bumper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/bump-version/internal/config"
	domain "github.com/oshokin/bump-version/internal/domain/version"
	"github.com/oshokin/bump-version/internal/logger"
	"github.com/oshokin/bump-version/internal/repository/versionfile"
	"github.com/oshokin/bump-version/internal/service/assetsync"
)

// reportPrefix tags every report line.
const reportPrefix = "[bump_version]"

// Options contains inputs for the bump-version entry point.
// Empty string fields fall back to the settings file.
type Options struct {
	// ConfigPath is an optional path to the YAML settings file.
	ConfigPath string
	// Root overrides the project root.
	Root string
	// VersionFile overrides the version file location.
	VersionFile string
	// LogLevel overrides the log level.
	LogLevel string
	// Version is the explicit version to set, nil when not given.
	Version *int
	// Increment bumps the stored version by one. It wins over Version.
	Increment bool
	// Output receives the report. Defaults to stdout.
	Output io.Writer
}

// Run resolves the version and synchronizes the asset tree.
// Version errors abort the run before any asset file is touched.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "bump-version")

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	repo := versionfile.NewFileRepository(cfg.VersionFilePath())

	decision, err := domain.Resolve(ctx, repo, domain.Request{
		Explicit:  opts.Version,
		Increment: opts.Increment,
	})
	if err != nil {
		return fmt.Errorf("resolve version: %w", err)
	}

	logger.InfoKV(ctx, "Resolved version",
		"version", decision.Target.String(),
		"persist", decision.Persist,
		"version_file", repo.Path(),
	)

	if decision.Persist {
		if err = repo.Save(ctx, decision.Target); err != nil {
			return fmt.Errorf("persist version: %w", err)
		}

		logger.InfoKV(ctx, "Saved version", "path", repo.Path(), "version", decision.Target.String())
	}

	result, err := assetsync.Sync(ctx, cfg.Root, decision.Target,
		assetsync.WithExtensions(cfg.Extensions...),
		assetsync.WithExcludedDirs(cfg.ExcludeDirs...),
	)
	if result != nil {
		printReport(opts.output(), decision.Target, result)
	}

	if err != nil {
		return fmt.Errorf("sync assets: %w", err)
	}

	return nil
}

// loadConfig reads the settings file and applies the command-line overrides.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.Root != "" {
		cfg.Root = opts.Root
	}

	if opts.VersionFile != "" {
		cfg.VersionFile = opts.VersionFile
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err = config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	return cfg, nil
}

func (o *Options) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}

	return o.Output
}

// printReport writes the resolved version and the rewritten files.
func printReport(w io.Writer, v domain.Version, result *assetsync.Result) {
	_, _ = fmt.Fprintf(w, "%s version=%s\n", reportPrefix, v)
	_, _ = fmt.Fprintf(w, "%s updated files: %d\n", reportPrefix, len(result.Changed))

	for _, path := range result.Changed {
		_, _ = fmt.Fprintln(w, " -", path)
	}
}
