package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a processor setting",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "locale",
		Short: "Get the current citation locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Lang)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "style",
		Short: "Get the current citation style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Style)
			return nil
		},
	})

	return cmd
}
