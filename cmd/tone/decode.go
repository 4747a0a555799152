package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tone-format/tone-go"
	"github.com/tone-format/tone-go/internal/convert"
)

func decodeCmd() *cobra.Command {
	var (
		to      string
		indent  int
		strict  bool
		colored bool
	)
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a TONE document to JSON or YAML",
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

			value, err := tone.DecodeValue(string(data), tone.WithDecodeIndent(indent), tone.WithStrict(strict), tone.WithColoredErrors(colored))
			if err != nil {
				return printDiagnostic(err)
			}

			var out []byte
			switch to {
			case "json":
				out, err = convert.ValueToJSON(value)
			case "yaml":
				out, err = convert.ValueToYAML(value)
			default:
				return fmt.Errorf("decode: unknown --to %q (want json or yaml)", to)
			}
			if err != nil {
				return err
			}
			_, err = stdout.Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "output format: json or yaml")
	cmd.Flags().IntVar(&indent, "indent", 2, "indent step the input was produced with (1-8)")
	cmd.Flags().BoolVar(&strict, "strict", true, "reject count/row-width disagreements instead of repairing them")
	cmd.Flags().BoolVar(&colored, "color", true, "colorize diagnostics")
	return cmd
}
