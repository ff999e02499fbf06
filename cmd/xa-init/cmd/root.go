package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/xa-init/internal/config"
	"github.com/oshokin/xa-init/internal/domain/linter"
	"github.com/oshokin/xa-init/internal/logger"
	"github.com/oshokin/xa-init/internal/service/setup"
	"github.com/oshokin/xa-init/internal/version"
)

// newRootCmd builds the xa-init command. Flag values live in the closure,
// so every command instance parses its own argument vector.
func newRootCmd() *cobra.Command {
	var (
		// configPath to the optional settings YAML file.
		configPath string
		// workDir holds the manifest.
		workDir string
		// logLevel overrides the level from the settings file.
		logLevel string
		// flags are the linter options.
		flags linter.Flags
	)

	root := &cobra.Command{
		Use:           "xa-init",
		Short:         "Add the xa linter to a package manifest",
		Long:          "Make the package.json test script run xa and, with --init, replace the xa config block with the given options.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				settings.LogLevel = logLevel
				if err = config.Validate(settings); err != nil {
					return err
				}
			}

			level, _ := logger.ParseLogLevel(settings.LogLevel)
			logger.SetLevel(level)

			return setup.Update(logger.WithName(ctx, "xa-init"), &setup.Options{
				Dir:      workDir,
				Flags:    &flags,
				Settings: settings,
			})
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "",
		fmt.Sprintf("path to settings file (default %q if present)", config.DefaultConfigFilename))
	root.Flags().StringVarP(&workDir, "cwd", "C", "", "directory containing the manifest (default current directory)")
	root.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	linter.BindFlags(root.Flags(), &flags)

	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the xa-init CLI and exits with non-zero status on error.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.ErrorKV(context.Background(), "xa-init failed", "error", err)
		os.Exit(1)
	}
}
