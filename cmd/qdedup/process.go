package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qbankops/qdedup/internal/config"
	"github.com/qbankops/qdedup/internal/pipeline"
	"github.com/qbankops/qdedup/internal/storage"
)

var (
	processOutputDir string
	processNoHistory bool
)

var processCmd = &cobra.Command{
	Use:   "process [source-file]",
	Short: "Resolve duplicate pairs and write the output artifacts",
	Long: `Process a duplicate-detection export and write three CSV artifacts:

  - final_selection_questions.csv          selected/rejected identifiers per pair
  - question_id_priority_mapping.csv       priority tier per selected identifier
  - final_consolidated_question_report.csv selections with labels and date

The source file is CSV or Excel (.xlsx), with question_1 and question_2
columns. Each field is expected to embed a 24-character hex identifier
tagged "Question ID" plus optional priority keywords. Pairs missing an
identifier on either side are skipped silently; counts appear in the
summary.

When no source file is given, Duplicate_Detection_Report.xlsx is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadFromEnv()
		if processOutputDir != "" {
			cfg.OutputDir = processOutputDir
		}
		if processNoHistory {
			cfg.HistoryEnabled = false
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
			os.Exit(1)
		}

		source := cfg.InputPath
		if len(args) > 0 {
			source = args[0]
		}

		ctx := context.Background()

		var store storage.RunStore
		if cfg.HistoryEnabled {
			s, err := storage.NewStore(ctx, &storage.Config{Path: cfg.HistoryPath})
			if err != nil {
				// History is best-effort; the run proceeds without it.
				fmt.Fprintf(os.Stderr, "Warning: run history unavailable: %v\n", err)
			} else {
				store = s
				defer s.Close()
			}
		}

		p := pipeline.New(cfg, store, os.Stdout)
		if _, err := p.Run(ctx, source); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("\n%s All processing completed successfully!\n", green("✓"))
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVar(&processOutputDir, "output-dir", "", "Directory for output artifacts (default current directory)")
	processCmd.Flags().BoolVar(&processNoHistory, "no-history", false, "Skip recording this run in the history database")
}
