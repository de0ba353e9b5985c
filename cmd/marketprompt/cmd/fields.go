package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type fieldOutput struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	HelperText   string `json:"helperText,omitempty"`
	DefaultValue string `json:"defaultValue"`
}

func newFieldsCmd(_ *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the form fields and their keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields := prompt.Fields()
			out := cmd.OutOrStdout()

			switch format {
			case "table":
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("KEY", "LABEL", "HELPER")
				for _, f := range fields {
					t.Row(f.Name, f.Label, f.HelperText)
				}
				fmt.Fprintln(out, t.String())
			case "json":
				rows := make([]fieldOutput, 0, len(fields))
				for _, f := range fields {
					rows = append(rows, fieldOutput{
						Name:         f.Name,
						Label:        f.Label,
						HelperText:   f.HelperText,
						DefaultValue: f.DefaultValue,
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(rows)
			default:
				return fmt.Errorf("unknown format %q: want table or json", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	return cmd
}
