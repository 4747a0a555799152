package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tone-format/tone-go"
	"github.com/tone-format/tone-go/internal/convert"
)

func convertCmd() *cobra.Command {
	var (
		from string
		to   string
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a document between TONE, JSON, and YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}

			var value tone.Value
			switch from {
			case "tone":
				value, err = tone.DecodeValue(string(data))
				if err != nil {
					return printDiagnostic(err)
				}
			case "json":
				value, err = convert.JSONToValue(data)
			case "yaml":
				value, err = convert.YAMLToValue(data)
			default:
				return fmt.Errorf("convert: unknown --from %q (want tone, json, or yaml)", from)
			}
			if err != nil {
				return err
			}

			var out []byte
			switch to {
			case "tone":
				var text string
				text, err = tone.EncodeValue(value)
				out = []byte(text)
			case "json":
				out, err = convert.ValueToJSON(value)
			case "yaml":
				out, err = convert.ValueToYAML(value)
			default:
				return fmt.Errorf("convert: unknown --to %q (want tone, json, or yaml)", to)
			}
			if err != nil {
				return printDiagnostic(err)
			}
			_, err = stdout.Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "tone", "input format: tone, json, or yaml")
	cmd.Flags().StringVar(&to, "to", "json", "output format: tone, json, or yaml")
	return cmd
}
