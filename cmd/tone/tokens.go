package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tone-format/tone-go/internal/tokencount"
)

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Estimate the LLM token count of a document",
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
			fmt.Fprintln(stdout, tokencount.Estimate(string(data)))
			return nil
		},
	}
	return cmd
}
