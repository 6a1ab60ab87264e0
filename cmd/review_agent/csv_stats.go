package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/ingestion"
	"github.com/jonathan/review-schedule/internal/observability"
)

var csvStatsCmd = &cobra.Command{
	Use:   "csv-stats",
	Short: "Summarize the vehicles of a CSV file",
	Long:  "Loads a vehicle CSV file and reports how many vehicles it holds by type, make and year.",
	RunE:  runCSVStats,
}

var (
	csvStatsPath string
	csvStatsJSON bool
)

func init() {
	csvStatsCmd.Flags().StringVarP(&csvStatsPath, "csv", "c", "", "Path to the vehicle CSV file (required)")
	csvStatsCmd.Flags().BoolVar(&csvStatsJSON, "json", false, "Print the statistics as JSON")

	markRequired(csvStatsCmd, "csv")

	rootCmd.AddCommand(csvStatsCmd)
}

// csvStatsReport is the JSON output of csv-stats.
type csvStatsReport struct {
	Source *ingestion.Metadata    `json:"source"`
	Stats  ingestion.VehicleStats `json:"stats"`
}

func runCSVStats(cmd *cobra.Command, _ []string) error {
	loaded, err := ingestion.LoadVehiclesCSV(csvStatsPath)
	if err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}
	stats := ingestion.Stats(loaded.Vehicles)

	if csvStatsJSON {
		return writeJSON(cmd.OutOrStdout(), "", csvStatsReport{Source: loaded.Metadata, Stats: stats})
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintLoadMetadata(loaded.Metadata)
	printer.PrintVehicleStats(stats)
	return nil
}
