// Package pipeline orchestrates the full duplicate-resolution flow: load the
// pair batch, resolve selections, write the three output artifacts, and
// record the run in history.
//
// The flow is strictly batch-oriented and single-threaded. Either all three
// artifacts are produced from the full resolvable subset of pairs, or the
// run aborts before producing any artifact.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/qbankops/qdedup/internal/config"
	"github.com/qbankops/qdedup/internal/priorities"
	"github.com/qbankops/qdedup/internal/report"
	"github.com/qbankops/qdedup/internal/resolve"
	"github.com/qbankops/qdedup/internal/storage"
	"github.com/qbankops/qdedup/internal/tabular"
)

var (
	selectionHeaders = []string{
		"selected_question_id", "rejected_question_id",
		"selected_priority", "rejected_priority", "chosen",
	}
	mappingHeaders = []string{"question_id", "priority", "priority_label"}
	reportHeaders  = append(selectionHeaders, "priority_label", "processing_date")
)

// Pipeline runs the duplicate-resolution flow end to end.
type Pipeline struct {
	cfg   config.ResolutionConfig
	store storage.RunStore // nil when run history is disabled
	out   io.Writer
}

// Result holds everything one run produced, for callers that want the data
// as well as the persisted artifacts.
type Result struct {
	Selections   []resolve.Selection
	Mapping      []report.MappingEntry
	Report       []report.Row
	Distribution []report.TierCount
	Stats        resolve.Stats
}

// New creates a pipeline. store may be nil to disable run history; progress
// output goes to out.
func New(cfg config.ResolutionConfig, store storage.RunStore, out io.Writer) *Pipeline {
	return &Pipeline{cfg: cfg, store: store, out: out}
}

// Run processes the source file at sourcePath and writes the three output
// artifacts to the configured output directory. Any load or write failure
// aborts the run with no partial recovery; pairs without extractable
// identifiers are skipped silently and surface only in the summary counts.
func (p *Pipeline) Run(ctx context.Context, sourcePath string) (*Result, error) {
	startedAt := time.Now()

	table, err := p.load(sourcePath)
	if err != nil {
		return nil, err
	}
	if err := table.RequireColumns("question_1", "question_2"); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}
	fmt.Fprintf(p.out, "Loaded %d duplicate pairs\n", len(table.Rows))

	pairs := make([]resolve.Pair, 0, len(table.Rows))
	for _, row := range table.Rows {
		pairs = append(pairs, resolve.Pair{
			Question1: row["question_1"],
			Question2: row["question_2"],
		})
	}

	selections, stats := resolve.Resolve(pairs)
	result := &Result{
		Selections:   selections,
		Mapping:      report.BuildMapping(selections),
		Report:       report.Consolidate(selections, startedAt),
		Distribution: report.Distribution(selections),
		Stats:        stats,
	}

	// All artifacts are derived before the first write so a late failure
	// cannot leave behind outputs computed from different states.
	green := color.New(color.FgGreen).SprintFunc()

	selectionPath := filepath.Join(p.cfg.OutputDir, p.cfg.SelectionFile)
	if err := tabular.WriteCSV(selectionPath, selectionHeaders, selectionRecords(selections)); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "%s Created %s (%d unique selections)\n", green("✓"), p.cfg.SelectionFile, stats.Resolved)

	mappingPath := filepath.Join(p.cfg.OutputDir, p.cfg.MappingFile)
	if err := tabular.WriteCSV(mappingPath, mappingHeaders, mappingRecords(result.Mapping)); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "%s Created %s\n", green("✓"), p.cfg.MappingFile)

	p.printSummary(result)

	reportPath := filepath.Join(p.cfg.OutputDir, p.cfg.ReportFile)
	if err := tabular.WriteCSV(reportPath, reportHeaders, reportRecords(result.Report)); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "\n%s Created %s\n", green("✓"), p.cfg.ReportFile)

	p.recordHistory(ctx, sourcePath, result, startedAt)

	return result, nil
}

// load reads the source table. Excel sources are additionally converted to a
// sibling CSV file, matching the layout downstream consumers expect.
func (p *Pipeline) load(sourcePath string) (*tabular.Table, error) {
	table, err := tabular.Load(sourcePath)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(sourcePath), ".xlsx") {
		csvPath := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".csv"
		if err := tabular.WriteCSV(csvPath, table.Headers, table.ToRecords()); err != nil {
			return nil, err
		}
		fmt.Fprintf(p.out, "Converted %s → %s\n", sourcePath, csvPath)
	}

	return table, nil
}

// printSummary writes the validation block: per-tier distribution of the
// surviving selections plus the skip and discard counters.
func (p *Pipeline) printSummary(result *Result) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(p.out, "\n%s\n", cyan("VALIDATION & SUMMARY"))
	fmt.Fprintln(p.out, strings.Repeat("=", 60))

	fmt.Fprintf(p.out, "\nPriority Distribution:\n")
	for _, tc := range result.Distribution {
		fmt.Fprintf(p.out, "  %s: %d questions\n", tc.Label, tc.Count)
	}

	gray := color.New(color.FgHiBlack).SprintFunc()
	if result.Stats.Skipped > 0 {
		fmt.Fprintf(p.out, "\n%s\n", gray(fmt.Sprintf("Skipped %d pairs with missing identifiers", result.Stats.Skipped)))
	}
	if result.Stats.Discarded > 0 {
		fmt.Fprintf(p.out, "%s\n", gray(fmt.Sprintf("Discarded %d duplicate selections", result.Stats.Discarded)))
	}
}

// recordHistory persists the run record. History failures are reported as
// warnings and never fail the run.
func (p *Pipeline) recordHistory(ctx context.Context, sourcePath string, result *Result, startedAt time.Time) {
	if p.store == nil {
		return
	}

	run := &storage.RunRecord{
		ID:         uuid.New().String(),
		SourceFile: sourcePath,
		TotalPairs: result.Stats.TotalPairs,
		Resolved:   result.Stats.Resolved,
		Skipped:    result.Stats.Skipped,
		Discarded:  result.Stats.Discarded,
		TierCounts: tierCounts(result),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if err := p.store.RecordRun(ctx, run); err != nil {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(p.out, "%s failed to record run history: %v\n", yellow("Warning:"), err)
	}
}

func tierCounts(result *Result) map[priorities.Tier]int {
	counts := make(map[priorities.Tier]int, len(result.Distribution))
	for _, tc := range result.Distribution {
		counts[tc.Tier] = tc.Count
	}
	return counts
}

func selectionRecords(selections []resolve.Selection) [][]string {
	records := make([][]string, 0, len(selections))
	for _, s := range selections {
		records = append(records, []string{
			s.SelectedID, s.RejectedID,
			strconv.Itoa(int(s.SelectedTier)), strconv.Itoa(int(s.RejectedTier)),
			string(s.Chosen),
		})
	}
	return records
}

func mappingRecords(mapping []report.MappingEntry) [][]string {
	records := make([][]string, 0, len(mapping))
	for _, m := range mapping {
		records = append(records, []string{
			m.QuestionID, strconv.Itoa(int(m.Priority)), m.Label,
		})
	}
	return records
}

func reportRecords(rows []report.Row) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		s := r.Selection
		records = append(records, []string{
			s.SelectedID, s.RejectedID,
			strconv.Itoa(int(s.SelectedTier)), strconv.Itoa(int(s.RejectedTier)),
			string(s.Chosen),
			r.Label, r.ProcessingDate,
		})
	}
	return records
}
