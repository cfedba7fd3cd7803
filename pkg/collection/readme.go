package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const descriptionPreviewLen = 100

// writeReadme renders the human-readable catalog: headline totals, a count
// table per category, and a nested per-subcategory listing linking every
// agent file.
func (w *Writer) writeReadme(index *Index) error {
	var b strings.Builder

	b.WriteString("# Claude Code Agents Collection\n\n")
	b.WriteString("A curated, deduplicated collection of Claude Code subagents from the community.\n\n")
	fmt.Fprintf(&b, "**Total Agents:** %d\n", index.TotalAgents)
	fmt.Fprintf(&b, "**Duplicates Removed:** %d\n\n", index.TotalDuplicatesRemoved)

	b.WriteString("## Statistics\n\n")
	b.WriteString("| Category | Count |\n")
	b.WriteString("|----------|-------|\n")
	for _, category := range sortedCategories(index) {
		count := 0
		for _, n := range index.Categories[category] {
			count += n
		}
		fmt.Fprintf(&b, "| %s | %d |\n", title(category), count)
	}
	b.WriteString("\n")

	b.WriteString("## Categories\n\n")
	for _, category := range sortedCategories(index) {
		fmt.Fprintf(&b, "### %s\n\n", title(category))
		for _, subcategory := range sortedSubcategories(index, category) {
			fmt.Fprintf(&b, "#### %s\n\n", title(subcategory))
			for _, entry := range index.Agents {
				if entry.Category != category || entry.Subcategory != subcategory {
					continue
				}
				fmt.Fprintf(&b, "- [%03d. %s](%s/%s) - %s\n",
					entry.ID, entry.Name, AgentsDir, entry.Path, preview(entry.Description))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Usage\n\n")
	b.WriteString("1. Browse the categories above to find agents you need\n")
	b.WriteString("2. Copy specific agents to your project's `.claude/agents/` directory\n")
	b.WriteString("3. Or run `curator install \"<task description>\"` to install matching agents\n")

	path := filepath.Join(w.baseDir, ReadmeFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrap(err, "failed to write catalog")
	}
	return nil
}

func sortedCategories(index *Index) []string {
	categories := make([]string, 0, len(index.Categories))
	for category := range index.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func sortedSubcategories(index *Index, category string) []string {
	subcategories := make([]string, 0, len(index.Categories[category]))
	for subcategory := range index.Categories[category] {
		subcategories = append(subcategories, subcategory)
	}
	sort.Strings(subcategories)
	return subcategories
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func preview(description string) string {
	if len(description) > descriptionPreviewLen {
		return description[:descriptionPreviewLen]
	}
	return description
}
