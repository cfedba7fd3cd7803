// Package quality scores parsed agent records for completeness and apparent
// usefulness. The score is an additive sum of independent signals; every
// signal is monotonic, so richer metadata, more structure or more content
// never lowers a record's score.
package quality

import (
	"strings"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

// KnownGoodSources lists origin collections whose agents have historically
// been well curated. Membership earns a provenance bonus.
var KnownGoodSources = []string{"voltagent", "wshobson", "0xfurai", "davepoon"}

// sectionKeywords are named-section markers that indicate a deliberately
// structured agent definition. Each one found contributes independently.
var sectionKeywords = []string{"responsibilities", "guidelines", "process", "workflow", "examples"}

// Score computes the quality score for a record. It is a pure function of the
// record's parsed fields; ties between equal scores are broken later by
// insertion order, never here.
func Score(rec *agent.Record) int {
	score := 0

	if rec.HasHeader() {
		score += 10
		if _, ok := rec.HeaderFields["name"]; ok {
			score += 5
		}
		if _, ok := rec.HeaderFields["description"]; ok {
			score += 5
			switch descLen := len(rec.Description); {
			case descLen > 100:
				score += 5
			case descLen > 50:
				score += 3
			}
		}
		if _, ok := rec.HeaderFields["tools"]; ok {
			score += 5
			switch toolCount := len(rec.Tools); {
			case toolCount > 5:
				score += 5
			case toolCount > 2:
				score += 3
			}
		}
	}

	switch bodyLen := len(rec.BodyContent); {
	case bodyLen > 2000:
		score += 15
	case bodyLen > 1000:
		score += 10
	case bodyLen > 500:
		score += 5
	}

	if strings.Contains(rec.BodyContent, "## ") {
		score += 3
	}
	if strings.Contains(rec.BodyContent, "### ") {
		score += 2
	}

	// One scale for code examples: "has several" subsumes "has some".
	switch fences := strings.Count(rec.BodyContent, "```"); {
	case fences >= 4:
		score += 10
	case fences >= 2:
		score += 5
	}

	bodyLower := strings.ToLower(rec.BodyContent)
	for _, keyword := range sectionKeywords {
		if strings.Contains(bodyLower, keyword) {
			score += 2
		}
	}

	if FromKnownGoodSource(rec.SourceLabel) {
		score += 10
	}

	return score
}

// FromKnownGoodSource reports whether the source label matches the allow-list
// of known-good origin collections.
func FromKnownGoodSource(sourceLabel string) bool {
	label := strings.ToLower(sourceLabel)
	for _, source := range KnownGoodSources {
		if strings.Contains(label, source) {
			return true
		}
	}
	return false
}
