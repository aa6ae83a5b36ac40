package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/ais-codes/internal/codes"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lookup <table> <code>",
		Short: "Resolve a code against a reference table",
		Long:  "Resolve a numeric code against the nav-status or ship-type table. Exits non-zero when the code is not documented.",
		Args:  cobra.ExactArgs(2),
		Run:   runLookup,
	}

	RootCmd.AddCommand(cmd)
}

func runLookup(cmd *cobra.Command, args []string) {
	code, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("parse code", err)
	}

	var entry any
	var description string
	var found bool

	switch args[0] {
	case "nav-status":
		e, ok := codes.LookupNavStatus(code)
		entry, description, found = e, e.Description, ok
	case "ship-type":
		e, ok := codes.LookupShipType(code)
		entry, description, found = e, e.Description, ok
	default:
		fmt.Fprintf(os.Stderr, "error: unknown table %q (tables: nav-status, ship-type)\n", args[0])
		os.Exit(1)
	}

	if !found {
		fmt.Fprintf(os.Stderr, "error: unknown %s code %d\n", args[0], code)
		os.Exit(1)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(entry, "", "  ")
		fmt.Println(string(b))
	} else {
		fmt.Println(description)
	}
}
