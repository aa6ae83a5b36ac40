// Package cli implements the ais-codes CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var formatFlag string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "ais-codes",
	Short: "AIS reference code tables and fleet analysis",
	Long:  "Lookup tool for AIS navigation status and ship type codes, plus a report generator for collected dry bulk position data.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
