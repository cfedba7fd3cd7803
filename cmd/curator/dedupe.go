package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/dedupe"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/pipeline"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/presenter"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/quality"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/scanner"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <source dir>",
	Short: "Re-run deduplication over an existing agent directory",
	Long: `Dedupe scans one directory of agent documents, reports the duplicate
groups it finds, and optionally rewrites the deduplicated collection. With
--explain it prints a content diff for every rejected record so curators can
review each merge.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		explain, _ := cmd.Flags().GetBool("explain")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		output, _ := cmd.Flags().GetString("output")

		source := scanner.NewSource(args[0])

		if dryRun {
			records, err := scanner.New().Scan(ctx, []scanner.Source{source})
			if err != nil {
				presenter.Warning("Some documents could not be ingested")
			}
			for _, rec := range records {
				rec.QualityScore = quality.Score(rec)
			}

			groups := dedupe.GroupRecords(records)
			for _, group := range groups {
				if group.IsUnique() {
					continue
				}
				survivor, rejected, decision := dedupe.Resolve(group)
				presenter.Section(fmt.Sprintf("Group %q: keeping %s (score %d)", decision.Group, decision.Selected, decision.Score))
				for _, rec := range rejected {
					presenter.Info(fmt.Sprintf("  rejected: %s (score %d)", rec.DisplayName, rec.QualityScore))
					if explain {
						presenter.Info(dedupe.ExplainDiff(survivor, rec))
					}
				}
			}
			presenter.Success(fmt.Sprintf("%d records in %d groups", len(records), len(groups)))
			return nil
		}

		outcome, err := pipeline.Run(ctx, pipeline.Options{
			Sources:   []scanner.Source{source},
			OutputDir: output,
		})
		if err != nil {
			return err
		}

		if explain {
			explainReport(outcome)
		}

		presenter.Summary(&presenter.RunSummary{
			Ingested:   outcome.Ingested,
			Unique:     len(outcome.Survivors),
			Duplicates: outcome.Index.TotalDuplicatesRemoved,
		})
		presenter.Success(fmt.Sprintf("Deduplicated collection written to %s", output))
		return nil
	},
}

func explainReport(outcome *pipeline.Outcome) {
	for _, decision := range outcome.Report.Decisions {
		presenter.Section(fmt.Sprintf("Group %q: kept %s", decision.Group, decision.Selected))
		presenter.Info(decision.Reason)
		for _, name := range decision.Rejected {
			presenter.Info("  rejected: " + name)
		}
	}
}

func init() {
	dedupeCmd.Flags().Bool("explain", false, "Print content diffs for rejected duplicates")
	dedupeCmd.Flags().Bool("dry-run", false, "Report duplicate groups without writing anything")
	dedupeCmd.Flags().StringP("output", "o", "collection", "Output directory for the deduplicated collection")
}
