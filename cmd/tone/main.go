// Command tone is a CLI front-end for the library: it calls into the core
// package for encoding, decoding, and conversion but defines no format
// semantics of its own.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

var stdout = colorable.NewColorableStdout()
var stderr = colorable.NewColorableStderr()

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tone",
		Short:         "Encode, decode, and inspect TONE documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(encodeCmd())
	root.AddCommand(decodeCmd())
	root.AddCommand(convertCmd())
	root.AddCommand(tokensCmd())
	root.AddCommand(lintCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}
}
