// Package cli provides the command-line interface for minitorch.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/minitorch/internal/cli/commands"
	"github.com/born-ml/minitorch/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "minitorch",
		Short: "minitorch - scalar operators and sequence combinators",
		Long: `minitorch exposes the scalar operator kernel of a minimal tensor library:
arithmetic, comparison and activation operators with their backward
functions, list operations built from map / zip-with / reduce, and the
synthetic datasets used to exercise them.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("loaded config file", "path", cfg.File)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	pf.StringP("output", "o", "", "Output format (table|json|csv)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.Uint64("seed", 0, fmt.Sprintf("Dataset sampling seed (default %d)", config.DefaultSeed))
	pf.Int("points", 0, fmt.Sprintf("Points per generated dataset (default %d)", config.DefaultPoints))
	pf.Int("workers", 0, "Workers for parallel maps (default: all CPUs)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewOpsCommand())
	rootCmd.AddCommand(commands.NewEvalCommand())
	rootCmd.AddCommand(commands.NewSeqCommand())
	rootCmd.AddCommand(commands.NewDatasetsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
