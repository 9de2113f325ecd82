package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/bump-version/internal/config"
	domain "github.com/oshokin/bump-version/internal/domain/version"
	"github.com/oshokin/bump-version/internal/repository/versionfile"
	"github.com/oshokin/bump-version/internal/service/bumper"
	"github.com/oshokin/bump-version/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// root is the project directory to synchronize.
	root string
	// versionFile is the version counter location.
	versionFile string
	// logLevel is the minimum level of diagnostic output.
	logLevel string
	// increment bumps the stored version by one.
	increment bool

	// rootCmd represents the base command for synchronizing cache-bust markers.
	rootCmd = &cobra.Command{
		Use:   "bump-version [version]",
		Short: "Sync the ?v= cache-bust parameter across static assets.",
		Long: `Rewrites every ?v=<number> marker in .js, .html and .css files of a project
tree to a single version kept in a version file.

  bump-version 38      set the version to 38 and sync
  bump-version --inc   increment the stored version and sync
  bump-version         sync using the stored version unchanged

--inc takes precedence over an explicit version.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &bumper.Options{
				ConfigPath: configPath,
				Increment:  increment,
				Output:     cmd.OutOrStdout(),
			}

			// Only flags given on the command line override the settings file.
			if cmd.Flags().Changed("root") {
				options.Root = root
			}

			if cmd.Flags().Changed("version-file") {
				options.VersionFile = versionFile
			}

			if cmd.Flags().Changed("log-level") {
				options.LogLevel = logLevel
			}

			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%q: %w", args[0], domain.ErrNotInteger)
				}

				options.Version = &n
			}

			return bumper.Run(ctx, options)
		},
	}
)

// Execute runs the bump-version CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&root, "root", "r", config.DefaultRoot, "project root to scan")
	rootCmd.Flags().StringVar(&versionFile, "version-file", versionfile.DefaultFilename, "version file, relative to the root unless absolute")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&increment, "inc", false, "increment the stored version by 1")
}
