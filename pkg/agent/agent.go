// Package agent defines the Record type that flows through the curation
// pipeline and the frontmatter parser that produces it from raw markdown.
package agent

import (
	"path/filepath"
	"strings"
)

// Metadata holds the typed fields extracted from an agent's YAML frontmatter.
type Metadata struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// Record is one parsed agent document. It is constructed once at ingestion,
// scored once, grouped once and classified once (if it survives dedup);
// no stage mutates a record owned by another stage.
type Record struct {
	// Path is the original file location, kept only for provenance and
	// final write-back. The pipeline never interprets it.
	Path string
	// SourceLabel names the origin collection (e.g. the repository the
	// file was collected from).
	SourceLabel string

	DisplayName string
	Description string
	Tools       []string

	// RawContent is the full original text including any frontmatter,
	// preserved verbatim for output.
	RawContent string
	// BodyContent is RawContent with the frontmatter block removed and
	// surrounding whitespace trimmed.
	BodyContent string
	// HeaderFields is the raw frontmatter map. Empty (non-nil) when the
	// document has no parseable frontmatter.
	HeaderFields map[string]interface{}

	QualityScore int

	Category    string
	Subcategory string
}

// DefaultCategory and DefaultSubcategory are assigned to every record before
// classification and used as the fallback when no taxonomy keyword matches.
const (
	DefaultCategory    = "specialized"
	DefaultSubcategory = "general"
)

// HasHeader reports whether the document carried a parseable frontmatter block.
func (r *Record) HasHeader() bool {
	return len(r.HeaderFields) > 0
}

// NewRecord builds a Record from a raw document. The display name comes from
// the frontmatter name field when present, otherwise from the filename stem,
// so it is never empty for a named file.
func NewRecord(path, sourceLabel, rawContent string) *Record {
	header, body := ParseFrontmatter(rawContent)
	meta := DecodeMetadata(header)

	name := meta.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &Record{
		Path:         path,
		SourceLabel:  sourceLabel,
		DisplayName:  name,
		Description:  meta.Description,
		Tools:        ToolsField(header),
		RawContent:   rawContent,
		BodyContent:  body,
		HeaderFields: header,
		Category:     DefaultCategory,
		Subcategory:  DefaultSubcategory,
	}
}

// LooksLikeAgent reports whether a parsed document plausibly describes an
// instructable persona: either it carried frontmatter, or the opening content
// contains one of the usual persona markers. Documents failing this check are
// excluded at ingestion.
func (r *Record) LooksLikeAgent() bool {
	if r.HasHeader() {
		return true
	}
	head := r.RawContent
	if len(head) > 200 {
		head = head[:200]
	}
	for _, marker := range []string{"You are", "Your role", "## "} {
		if strings.Contains(head, marker) {
			return true
		}
	}
	return false
}
