package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/ais-codes/internal/analyzer"
	"github.com/rcliao/ais-codes/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate a fleet report from collected position data",
		Run:   runAnalyze,
	}

	cmd.Flags().String("csv", "ais_data/dry_bulk_vessels.csv", "Path to the position CSV")
	cmd.Flags().String("vessel-db", "ais_data/vessel_database.json", "Path to the vessel database JSON")
	cmd.Flags().Int("days", 0, "Only analyze the last N days (0 = all)")
	cmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	csvPath, _ := cmd.Flags().GetString("csv")
	dbPath, _ := cmd.Flags().GetString("vessel-db")
	days, _ := cmd.Flags().GetInt("days")
	outPath, _ := cmd.Flags().GetString("out")

	records, err := analyzer.LoadCSV(csvPath)
	if err != nil {
		exitErr("load positions", err)
	}
	vessels, err := analyzer.LoadVesselDB(dbPath)
	if err != nil {
		exitErr("load vessel db", err)
	}

	ds := analyzer.NewDataset(records, vessels)
	if days > 0 {
		removed := ds.FilterDays(days, time.Now().UTC())
		fmt.Fprintf(os.Stderr, "filtered to last %d days: %d records kept, %d dropped\n", days, len(ds.Records), removed)
	}

	out := report.Render(ds, time.Now().UTC(), csvPath)
	if outPath == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		exitErr("write report", err)
	}
	fmt.Fprintf(os.Stderr, "report saved to %s\n", outPath)
}
