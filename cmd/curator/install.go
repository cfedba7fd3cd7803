package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/installer"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/presenter"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/remoteindex"
)

var installCmd = &cobra.Command{
	Use:   "install <task description>",
	Short: "Analyze a task and install matching agents into the project",
	Long: `Install matches the task description against a keyword table, looks the
suggested agents up in the collection index, and copies their files into the
project's .claude/agents directory. Already-installed agents are skipped.`,
	Args: cobra.MinimumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		project, _ := cmd.Flags().GetString("project")
		collectionDir, _ := cmd.Flags().GetString("collection")
		indexURL, _ := cmd.Flags().GetString("index-url")
		list, _ := cmd.Flags().GetBool("list")

		// Prefer the local collection's index; fall back to the published one.
		var index *collection.Index
		localIndex := filepath.Join(collectionDir, collection.IndexFile)
		if loaded, err := collection.LoadIndex(localIndex); err == nil {
			index = loaded
		} else {
			index = remoteindex.New(remoteindex.WithURL(indexURL)).Load(ctx)
		}

		inst := installer.New(project, collectionDir, index)

		if list {
			installed := inst.ListInstalled()
			if len(installed) == 0 {
				presenter.Info("No agents installed")
				return nil
			}
			presenter.Section(fmt.Sprintf("Installed agents (%d)", len(installed)))
			for _, name := range installed {
				presenter.Info("  " + name)
			}
			return nil
		}

		if len(args) == 0 {
			return errors.New("a task description is required (or use --list)")
		}
		if index == nil {
			return errors.New("no collection index available; run curator collect first or check the index URL")
		}

		prompt := strings.Join(args, " ")
		result, err := inst.AutoInstall(ctx, prompt)
		if err != nil {
			return err
		}

		if len(result.Analysis.Categories) > 0 {
			presenter.Info("Detected: " + strings.Join(result.Analysis.Categories, ", "))
		}
		for _, name := range result.AgentsInstalled {
			presenter.Success("Installed: " + name)
		}
		for _, name := range result.AgentsSkipped {
			presenter.Info("Already installed: " + name)
		}
		presenter.Info(result.Message)
		return nil
	},
}

func init() {
	installCmd.Flags().String("project", ".", "Project directory to install agents into")
	installCmd.Flags().String("collection", "collection", "Local collection directory to install from")
	installCmd.Flags().String("index-url", remoteindex.DefaultIndexURL, "Remote index URL fallback")
	installCmd.Flags().Bool("list", false, "List installed agents instead of installing")
}
