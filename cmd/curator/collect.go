package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/classify"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/pipeline"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/presenter"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/scanner"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/store"
)

var collectCmd = &cobra.Command{
	Use:   "collect [source dirs...]",
	Short: "Run the full curation pipeline over one or more source directories",
	Long: `Collect scans the given source directories for agent documents, scores
them, collapses near-duplicates, classifies the survivors and writes the
deduplicated collection plus its index, decision log and catalog.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		output, _ := cmd.Flags().GetString("output")
		workers, _ := cmd.Flags().GetInt("workers")
		quick, _ := cmd.Flags().GetBool("quick")
		taxonomyPath, _ := cmd.Flags().GetString("taxonomy")
		dbPath, _ := cmd.Flags().GetString("db")
		skipDB, _ := cmd.Flags().GetBool("no-db")

		var taxonomy classify.Taxonomy
		if taxonomyPath != "" {
			var err error
			taxonomy, err = classify.LoadTaxonomy(taxonomyPath)
			if err != nil {
				return err
			}
		}

		sources := make([]scanner.Source, 0, len(args))
		for _, root := range args {
			sources = append(sources, scanner.NewSource(root))
		}

		outcome, err := pipeline.Run(ctx, pipeline.Options{
			Sources:   sources,
			OutputDir: output,
			Taxonomy:  taxonomy,
			Quick:     quick,
			Workers:   workers,
		})
		if err != nil {
			return err
		}

		if !skipDB {
			s, err := store.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Replace(ctx, outcome.Index); err != nil {
				return err
			}
		}

		presenter.Section("Collection complete")
		presenter.Summary(&presenter.RunSummary{
			Ingested:   outcome.Ingested,
			Unique:     len(outcome.Survivors),
			Duplicates: outcome.Index.TotalDuplicatesRemoved,
			Categories: len(outcome.Index.Categories),
		})
		presenter.Success(fmt.Sprintf("Wrote %d agents to %s", outcome.Index.TotalAgents, output))
		return nil
	},
}

func init() {
	collectCmd.Flags().StringP("output", "o", "collection", "Output directory for the collection")
	collectCmd.Flags().Int("workers", 0, "Parse worker count (0 for default)")
	collectCmd.Flags().Bool("quick", false, "Use fast first-match classification")
	collectCmd.Flags().String("taxonomy", "", "Path to a YAML taxonomy file (default: built-in)")
	collectCmd.Flags().String("db", "", "Index database path (default: ~/.curator/index.db)")
	collectCmd.Flags().Bool("no-db", false, "Skip updating the index database")
}
