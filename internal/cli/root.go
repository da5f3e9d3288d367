package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/config"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version and
// reported by the MCP server.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the skeletonize CLI.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Before any subcommand runs, the
// configuration is loaded and a logger on the command's stderr is attached to
// its context.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "skeletonize",
		Short:         "Skeletonize thins binary images to one pixel wide skeletons",
		Long:          `Skeletonize reduces the foreground of binary images to their topological skeleton with interchangeable iterative thinning algorithms, and renders the iterations as frames.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level := cfg.Level()
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("configuration loaded", "algorithm", cfg.Algorithm, "crop", cfg.Crop, "max_iterations", cfg.MaxIterations)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("skeletonize %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $"+config.EnvPath+" or $XDG_CONFIG_HOME/skeletonize/config.toml)")

	root.AddCommand(newThinCmd())
	root.AddCommand(newFramesCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newBenchmarkCmd())
	root.AddCommand(newAlgorithmsCmd())
	root.AddCommand(newServeCmd())

	return root
}
