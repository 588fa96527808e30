package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weightidx/internal/registry"
)

// Config carries flag values shared across the command tree.
type Config struct {
	Index   string
	Profile string
	LogLvl  string
}

// buildRootCmd constructs the Cobra command tree. The root command itself
// runs the inspection so `weightidx --index <path>` works without a
// subcommand.
func buildRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "weightidx",
		Short:         "Report parameter-group coverage of safetensors index manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Index == "" {
				return fmt.Errorf("--index is required (path to model.safetensors.index.json)")
			}
			return runInspect(cmd.OutOrStdout(), cfg.Index, cfg.Profile)
		},
	}
	root.Flags().StringVar(&cfg.Index, "index", "", "Path to model.safetensors.index.json")
	root.Flags().StringVar(&cfg.Profile, "profile", "", "Expectation profile file (yaml/json/toml)")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", envStr("WEIGHTIDX_LOG_LEVEL", "warn"), "Log level: debug|info|warn|error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		l := newLogger(cfg.LogLvl)
		logger = l
		registry.SetLogger(l)
	}

	scanCmd := &cobra.Command{
		Use:     "scan <dir>",
		Short:   "Summarize every safetensors index manifest in a directory",
		Example: "  weightidx scan ~/models/voice-lm",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.OutOrStdout(), args[0])
		},
	}
	root.AddCommand(scanCmd)

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	root.AddCommand(completionCmd)

	return root
}
