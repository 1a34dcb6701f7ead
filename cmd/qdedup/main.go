package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qdedup",
	Short: "Question deduplication and priority mapping pipeline",
	Long: `qdedup resolves flagged duplicate-question pairs into a single canonical
survivor per pair, ranked by educational-content priority (JEE Advanced >
JEE Mains > NCERT > Plain/Other), and writes consolidated reporting
artifacts.

Common usage:
  qdedup process                      # Process Duplicate_Detection_Report.xlsx
  qdedup process pairs.csv            # Process a specific source file
  qdedup history                      # Show recent runs`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
