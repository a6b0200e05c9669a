package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// toolVersion is a plain constant rather than VCS/build-date metadata
// stamped via -ldflags: this module has no equivalent release pipeline to
// stamp from.
const toolVersion = "0.1.0-dev"

const versionTagline = "targets ADVM/wasm32"

var versionTaglineColor = color.New(color.FgWhite, color.Italic)

func versionString() string {
	return toolVersion
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show aoc build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "aoc %s — %s\n", toolVersion, versionTaglineColor.Sprint(versionTagline))
		return nil
	},
}
