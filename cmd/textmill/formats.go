// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/textmill/internal/transcode"
	"github.com/pdiddy/textmill/pkg/types"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats and query local capability",
	Long: `Formats lists the format catalog: identifier, display name, category,
canonical extension, and input/output eligibility.

With both --from and --to, it instead reports whether the pair can be
converted by the local transcoder without the remote service.`,
	RunE: runFormats,
}

func runFormats(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	if from != "" || to != "" {
		if from == "" || to == "" {
			return fmt.Errorf("capability query requires both --from and --to")
		}
		if transcode.CanHandle(types.Format(from), types.Format(to)) {
			fmt.Printf("%s -> %s: local\n", from, to)
		} else {
			fmt.Printf("%s -> %s: remote only\n", from, to)
		}
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	formats := types.Formats()

	switch output {
	case "yaml":
		data, err := yaml.Marshal(formats)
		if err != nil {
			return fmt.Errorf("encoding formats: %w", err)
		}
		os.Stdout.Write(data)
	case "table", "":
		fmt.Printf("%-16s  %-26s  %-13s  %-5s  %-3s  %s\n",
			"ID", "Name", "Category", "Ext", "In", "Out")
		for _, fi := range formats {
			fmt.Printf("%-16s  %-26s  %-13s  %-5s  %-3s  %s\n",
				fi.ID, fi.DisplayName, fi.Category, fi.Extension,
				yesNo(fi.Input), yesNo(fi.Output))
		}
	default:
		return fmt.Errorf("unsupported output %q: use table or yaml", output)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	formatsCmd.Flags().String("output", "table", "output format: table or yaml")
	formatsCmd.Flags().String("from", "", "source format for a capability query")
	formatsCmd.Flags().String("to", "", "target format for a capability query")

	rootCmd.AddCommand(formatsCmd)
}
