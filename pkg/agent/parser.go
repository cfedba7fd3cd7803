package agent

import (
	"bytes"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// ParseFrontmatter splits raw document text into its frontmatter map and body
// content. The frontmatter is the YAML block between an opening "---" line and
// the next "---" line. Any parse failure, including malformed YAML, degrades
// to (empty map, raw text); this function never fails.
func ParseFrontmatter(content string) (map[string]interface{}, string) {
	header := extractHeader(content)
	if header == nil {
		return map[string]interface{}{}, strings.TrimSpace(content)
	}
	return header, strings.TrimSpace(extractBody(content))
}

// extractHeader parses the frontmatter block with goldmark-meta. A nil return
// means the document has no usable header.
func extractHeader(content string) map[string]interface{} {
	if !strings.HasPrefix(content, "---") {
		return nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		return nil
	}

	metaData := meta.Get(pctx)
	if len(metaData) == 0 {
		return nil
	}
	return metaData
}

// extractBody returns the markdown content after the frontmatter block. When
// no closing delimiter exists the full content is returned unchanged.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}
	if frontmatterEnd == -1 {
		return content
	}

	return strings.Join(lines[frontmatterEnd+1:], "\n")
}

// DecodeMetadata maps the raw frontmatter onto the typed Metadata fields.
// Unknown keys are ignored; decode failures yield zero values rather than
// errors, matching the tolerant header contract.
func DecodeMetadata(header map[string]interface{}) Metadata {
	var md Metadata
	_ = mapstructure.Decode(header, &md)
	return md
}

// ToolsField extracts the tools declaration from the frontmatter. It accepts
// both a YAML list and a comma-separated string and always returns a non-nil
// slice, so an absent field reads as an empty tool set.
func ToolsField(header map[string]interface{}) []string {
	switch v := header["tools"].(type) {
	case []interface{}:
		tools := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					tools = append(tools, trimmed)
				}
			}
		}
		return tools
	case string:
		tools := []string{}
		for _, item := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				tools = append(tools, trimmed)
			}
		}
		return tools
	default:
		return []string{}
	}
}
