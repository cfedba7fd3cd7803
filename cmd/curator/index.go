package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/presenter"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/store"
)

var indexCmd = &cobra.Command{
	Use:   "index <collection dir>",
	Short: "Rebuild agents-index.json from an existing collection tree",
	Long: `Index walks a collection's agents directory and regenerates
agents-index.json from what is actually on disk, keeping the directory
layout's categorization. Useful after hand-editing the tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		index, err := collection.Reindex(ctx, args[0])
		if err != nil {
			return err
		}

		skipDB, _ := cmd.Flags().GetBool("no-db")
		if !skipDB {
			dbPath, _ := cmd.Flags().GetString("db")
			s, err := store.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Replace(ctx, index); err != nil {
				return err
			}
		}

		presenter.Success(fmt.Sprintf("Indexed %d agents", index.TotalAgents))
		return nil
	},
}

func init() {
	indexCmd.Flags().String("db", "", "Index database path (default: ~/.curator/index.db)")
	indexCmd.Flags().Bool("no-db", false, "Skip updating the index database")
}
