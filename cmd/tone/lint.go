package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tone-format/tone-go"
)

func lintCmd() *cobra.Command {
	var (
		indent int
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Check a document for well-formedness without decoding it",
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
			if err := tone.Valid(string(data), tone.WithDecodeIndent(indent), tone.WithStrict(strict)); err != nil {
				return printDiagnostic(err)
			}
			fmt.Fprintln(stdout, "ok")
			return nil
		},
	}
	cmd.Flags().IntVar(&indent, "indent", 2, "indent step the input was produced with (1-8)")
	cmd.Flags().BoolVar(&strict, "strict", true, "reject count/row-width disagreements instead of repairing them")
	return cmd
}
