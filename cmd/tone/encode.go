package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tone-format/tone-go"
	"github.com/tone-format/tone-go/internal/convert"
)

func encodeCmd() *cobra.Command {
	var (
		from         string
		indent       int
		delimiter    string
		lengthMarker bool
	)
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode JSON or YAML input as TONE",
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
			case "json":
				value, err = convert.JSONToValue(data)
			case "yaml":
				value, err = convert.YAMLToValue(data)
			default:
				return fmt.Errorf("encode: unknown --from %q (want json or yaml)", from)
			}
			if err != nil {
				return err
			}

			delim, err := parseDelimiterFlag(delimiter)
			if err != nil {
				return err
			}
			out, err := tone.Marshal(value,
				tone.WithIndent(indent),
				tone.WithDelimiter(delim),
				tone.WithLengthMarker(lengthMarker),
			)
			if err != nil {
				return err
			}
			_, err = stdout.Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json or yaml")
	cmd.Flags().IntVar(&indent, "indent", 2, "indent step (1-8)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "comma", "array delimiter: comma, tab, or pipe")
	cmd.Flags().BoolVar(&lengthMarker, "length-marker", false, "render array lengths as [#N]")
	return cmd
}

func parseDelimiterFlag(s string) (tone.Delimiter, error) {
	switch s {
	case "comma", ",":
		return tone.Comma, nil
	case "tab", "\t":
		return tone.Tab, nil
	case "pipe", "|":
		return tone.Pipe, nil
	default:
		return 0, fmt.Errorf("unknown delimiter %q (want comma, tab, or pipe)", s)
	}
}
