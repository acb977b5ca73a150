// Package main is the entry point for the citekit CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/citekit/csl"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globalOptions holds the persistent flags shared by all commands.
type globalOptions struct {
	configFile string
	verbose    bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "citekit",
		Short: "Citation data toolkit",
		Long: `citekit normalises bibliographic page fields and inspects the
settings used to build a citation processor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (.yaml, .toml or .json)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(pagesCmd())
	cmd.AddCommand(getCmd(opts))
	cmd.AddCommand(shellCmd(opts))
	cmd.AddCommand(schemaCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig resolves settings: defaults, then the config file, then the environment.
func loadConfig(opts *globalOptions) (csl.Config, error) {
	cfg := csl.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := csl.LoadFile(opts.configFile)
		if err != nil {
			return csl.Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return csl.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
