package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qbankops/qdedup/internal/config"
	"github.com/qbankops/qdedup/internal/priorities"
	"github.com/qbankops/qdedup/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent pipeline runs",
	Long:  `Display recent pipeline runs recorded in the run-history database, most recent first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadFromEnv()

		ctx := context.Background()
		store, err := storage.NewStore(ctx, &storage.Config{Path: cfg.HistoryPath})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open run history: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		runs, err := store.GetRecentRuns(ctx, historyLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load run history: %v\n", err)
			os.Exit(1)
		}

		if len(runs) == 0 {
			fmt.Println("No recorded runs")
			return
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		for _, run := range runs {
			fmt.Printf("%s  %s\n", run.FinishedAt.Local().Format("2006-01-02 15:04:05"), cyan(run.SourceFile))
			fmt.Printf("  pairs: %d  resolved: %d  skipped: %d  discarded: %d\n",
				run.TotalPairs, run.Resolved, run.Skipped, run.Discarded)
			for _, tier := range priorities.Tiers() {
				if run.TierCounts[tier] == 0 {
					continue
				}
				fmt.Printf("  %s\n", gray(fmt.Sprintf("%s: %d", tier.Label(), run.TierCounts[tier])))
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to show")
}
