package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/tone-format/tone-go"
)

// printDiagnostic renders a decode/encode error as a bold, positioned
// diagnostic carried by a *tone.Error, and returns err unchanged so the
// caller's RunE can still surface a non-zero exit status.
func printDiagnostic(err error) error {
	pe, ok := tone.AsPositionedError(err)
	if !ok {
		fmt.Fprintln(stderr, err)
		return err
	}
	bold := color.New(color.Bold, color.FgHiRed)
	bold.Fprintln(stderr, pe.Error())
	return err
}
