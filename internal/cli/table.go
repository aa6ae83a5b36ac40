package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/ais-codes/internal/codes"
)

func init() {
	cmd := &cobra.Command{
		Use:   "table <table>",
		Short: "Print every documented entry of a reference table",
		Args:  cobra.ExactArgs(1),
		Run:   runTable,
	}

	RootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) {
	switch args[0] {
	case "nav-status":
		entries := codes.NavStatuses()
		if formatFlag == "json" {
			b, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Println(string(b))
			return
		}
		for _, e := range entries {
			marker := ""
			if e.Extended {
				marker = "  [vendor]"
			}
			fmt.Printf("%3d  %s%s\n", e.Code, e.Description, marker)
		}
	case "ship-type":
		entries := codes.ShipTypes()
		if formatFlag == "json" {
			b, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Println(string(b))
			return
		}
		for _, e := range entries {
			fmt.Printf("%3d  %s\n", e.Code, e.Description)
		}
	default:
		fmt.Fprintf(os.Stderr, "error: unknown table %q (tables: nav-status, ship-type)\n", args[0])
		os.Exit(1)
	}
}
