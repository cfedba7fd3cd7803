package collection

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
)

// numberedName matches the NNN_ prefix the writer puts on agent filenames.
var numberedName = regexp.MustCompile(`^\d+[-_]`)

// Reindex rebuilds agents-index.json from an existing collection tree. The
// category and subcategory come from the directory layout, not from
// reclassification, so a hand-reorganized tree keeps its organization.
// Entries are ordered by case-insensitive name and renumbered.
func Reindex(ctx context.Context, baseDir string) (*Index, error) {
	log := logger.G(ctx)

	agentsRoot := filepath.Join(baseDir, AgentsDir)
	matches, err := doublestar.Glob(os.DirFS(agentsRoot), "*/*/*.md")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection tree")
	}

	var entries []Entry
	for _, match := range matches {
		segments := strings.Split(match, "/")
		category, subcategory := segments[0], segments[1]

		fullPath := filepath.Join(agentsRoot, filepath.FromSlash(match))
		data, err := os.ReadFile(fullPath)
		if err != nil {
			log.WithField("path", fullPath).WithError(err).Warn("Failed to read agent file, skipping")
			continue
		}

		rec := agent.NewRecord(fullPath, "", string(data))
		name := numberedName.ReplaceAllString(rec.DisplayName, "")

		entries = append(entries, Entry{
			Name:        name,
			Description: rec.Description,
			Category:    category,
			Subcategory: subcategory,
			Tools:       rec.Tools,
			Path:        match,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	index := &Index{
		TotalAgents: len(entries),
		Categories:  map[string]map[string]int{},
		Agents:      []Entry{},
	}
	for i := range entries {
		entries[i].ID = i + 1
		if index.Categories[entries[i].Category] == nil {
			index.Categories[entries[i].Category] = map[string]int{}
		}
		index.Categories[entries[i].Category][entries[i].Subcategory]++
		index.Agents = append(index.Agents, entries[i])
	}

	writer := NewWriter(baseDir)
	if err := writer.writeJSON(IndexFile, index); err != nil {
		return nil, err
	}

	log.WithField("agents", index.TotalAgents).Info("Rebuilt collection index")
	return index, nil
}
