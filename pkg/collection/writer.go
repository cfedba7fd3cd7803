// Package collection persists the deduplicated, classified agent set: the
// numbered per-category file layout, the machine index, the dedupe decision
// log, and the human-readable catalog.
package collection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/dedupe"
)

const (
	// AgentsDir is the subdirectory holding the numbered agent files.
	AgentsDir = "agents"
	// IndexFile is the machine-readable collection index.
	IndexFile = "agents-index.json"
	// LogFile records the dedupe decision trail of the producing run.
	LogFile = "deduplication_log.json"
	// ReadmeFile is the human-readable catalog.
	ReadmeFile = "README.md"
)

// unsafeChars matches filename characters outside [A-Za-z0-9_-].
var unsafeChars = regexp.MustCompile(`[^\w\-]`)

// Entry is one agent's row in the collection index.
type Entry struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Tools        []string `json:"tools"`
	Source       string   `json:"source"`
	QualityScore int      `json:"quality_score"`
	Path         string   `json:"path"`
}

// Index is the agents-index.json document.
type Index struct {
	TotalAgents            int                       `json:"total_agents"`
	TotalDuplicatesRemoved int                       `json:"total_duplicates_removed"`
	Categories             map[string]map[string]int `json:"categories"`
	Agents                 []Entry                   `json:"agents"`
}

// Writer persists a collection under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// BaseDir returns the collection root.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// Write persists survivors and the run's decision trail. Survivors are
// ordered by category, subcategory, then case-insensitive name, and IDs are
// assigned sequentially from 1 in that order so the layout is reproducible
// for identical input. Any write failure is fatal; the collection must be
// complete or absent, never partial by silent omission.
func (w *Writer) Write(survivors []*agent.Record, report *dedupe.Report) (*Index, error) {
	ordered := make([]*agent.Record, len(survivors))
	copy(ordered, survivors)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Subcategory != b.Subcategory {
			return a.Subcategory < b.Subcategory
		}
		return strings.ToLower(a.DisplayName) < strings.ToLower(b.DisplayName)
	})

	index := &Index{
		TotalAgents: len(ordered),
		Categories:  map[string]map[string]int{},
		Agents:      []Entry{},
	}
	if report != nil {
		index.TotalDuplicatesRemoved = report.OriginalCount - report.UniqueCount
	}

	for i, rec := range ordered {
		id := i + 1
		relPath := EntryPath(id, rec)

		fullPath := filepath.Join(w.baseDir, AgentsDir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create category directory")
		}
		if err := os.WriteFile(fullPath, []byte(rec.RawContent), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write agent %q", rec.DisplayName)
		}

		if index.Categories[rec.Category] == nil {
			index.Categories[rec.Category] = map[string]int{}
		}
		index.Categories[rec.Category][rec.Subcategory]++

		index.Agents = append(index.Agents, Entry{
			ID:           id,
			Name:         rec.DisplayName,
			Description:  rec.Description,
			Category:     rec.Category,
			Subcategory:  rec.Subcategory,
			Tools:        rec.Tools,
			Source:       rec.SourceLabel,
			QualityScore: rec.QualityScore,
			Path:         relPath,
		})
	}

	if err := w.writeJSON(IndexFile, index); err != nil {
		return nil, err
	}
	if report != nil {
		if err := w.writeJSON(LogFile, report); err != nil {
			return nil, err
		}
	}
	if err := w.writeReadme(index); err != nil {
		return nil, err
	}
	return index, nil
}

// EntryPath returns an agent's path relative to the agents directory:
// <category>/<subcategory>/NNN_name.md with unsafe characters replaced.
func EntryPath(id int, rec *agent.Record) string {
	name := unsafeChars.ReplaceAllString(rec.DisplayName, "_")
	return fmt.Sprintf("%s/%s/%03d_%s.md", rec.Category, rec.Subcategory, id, name)
}

func (w *Writer) writeJSON(name string, payload interface{}) error {
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create collection directory")
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", name)
	}
	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}

// LoadIndex reads an agents-index.json document from disk.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read index")
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, errors.Wrap(err, "failed to decode index")
	}
	return &index, nil
}
