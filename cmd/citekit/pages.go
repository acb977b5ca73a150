package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/citekit/bibtex"
	"github.com/randalmurphal/citekit/shell"
)

func pagesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pages <value>...",
		Short: "Normalise bibliographic page fields",
		Example: `  citekit pages 10--20
  citekit pages "10-20,30--40,45" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := bibtex.ParsePages(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				for _, pr := range ranges {
					fmt.Fprintln(out, shell.FormatPageRange(pr))
				}
			case "json":
				data, err := json.MarshalIndent(ranges, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal pages: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(ranges)
				if err != nil {
					return fmt.Errorf("marshal pages: %w", err)
				}
				fmt.Fprint(out, string(data))
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")

	return cmd
}
