package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/presenter"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/store"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the agent index database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, _ := cmd.Flags().GetString("db")
		category, _ := cmd.Flags().GetString("category")
		subcategory, _ := cmd.Flags().GetString("subcategory")
		keyword, _ := cmd.Flags().GetString("keyword")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := store.Open(ctx, dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.Query(ctx, store.Filter{
			Category:    category,
			Subcategory: subcategory,
			Keyword:     keyword,
			Limit:       limit,
		})
		if err != nil {
			return err
		}

		if asJSON {
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(rows) == 0 {
			presenter.Info("No agents matched")
			return nil
		}
		for _, row := range rows {
			presenter.Info(fmt.Sprintf("[%03d] %s (%s/%s, score %d) - %s",
				row.ID, row.Name, row.Category, row.Subcategory, row.QualityScore, row.Description))
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().String("db", "", "Index database path (default: ~/.curator/index.db)")
	queryCmd.Flags().String("category", "", "Filter by category")
	queryCmd.Flags().String("subcategory", "", "Filter by subcategory")
	queryCmd.Flags().String("keyword", "", "Filter by keyword in name or description")
	queryCmd.Flags().Int("limit", 0, "Maximum results (0 for all)")
	queryCmd.Flags().Bool("json", false, "Emit JSON instead of text")
}
