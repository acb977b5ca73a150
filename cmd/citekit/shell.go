package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/citekit/csl"
	"github.com/randalmurphal/citekit/shell"
)

func shellCmd(opts *globalOptions) *cobra.Command {
	var (
		watch    bool
		noPrompt bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive citekit shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && opts.configFile == "" {
				return fmt.Errorf("--watch requires --config")
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			sctx := shell.NewContext(cfg)
			sh := shell.New(sctx)
			if !noPrompt {
				sh.SetPrompt(shell.DefaultPrompt)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if watch {
				go func() {
					for updated := range csl.Watch(ctx, opts.configFile) {
						updated.LoadFromEnv()
						sctx.Apply(updated)
						slog.Info("config reloaded",
							slog.String("path", opts.configFile),
							slog.String("lang", updated.Lang))
					}
				}()
			}

			return sh.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "do not print a prompt")

	return cmd
}
