package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/spf13/cobra"
)

type composeOutput struct {
	Prompt   string        `json:"prompt"`
	Sections []string      `json:"sections"`
	Values   prompt.Values `json:"values"`
}

func newComposeCmd(o *rootOptions) *cobra.Command {
	var (
		copyOut bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the composed prompt",
		Long: `Compose the prompt from the default values, a brief file and --set overrides,
in that order. Keys absent from the brief keep their starting value; an empty
value clears the field.`,
		Example: `  marketprompt compose --set tone="Diretto e sintetico"
  marketprompt compose --empty -f brief.yaml --copy
  marketprompt compose --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := o.resolveValues()
			if err != nil {
				return err
			}
			text := prompt.Compose(values)

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				fmt.Fprintln(out, text)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				if err := enc.Encode(composeOutput{
					Prompt:   text,
					Sections: prompt.Sections(values),
					Values:   values,
				}); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q: want text or json", format)
			}

			if !copyOut {
				return nil
			}
			res, err := o.copyText(cmd.Context(), text)
			if err != nil {
				return err
			}
			o.logger.Info("Copiato!", "method", res.Method)
			return nil
		},
	}

	addValuesFlags(cmd, o)
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "also copy the prompt to the clipboard")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")
	return cmd
}
