package dedupe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

// Decision records how one duplicate group was resolved.
type Decision struct {
	Group    string   `json:"group"`
	Selected string   `json:"selected"`
	Score    int      `json:"score"`
	Rejected []string `json:"rejected"`
	Reason   string   `json:"reason"`
}

// Report is the full decision trail of a deduplication run.
type Report struct {
	RunID           string     `json:"run_id,omitempty"`
	OriginalCount   int        `json:"original_count"`
	UniqueCount     int        `json:"unique_count"`
	DuplicateGroups int        `json:"duplicate_groups"`
	Decisions       []Decision `json:"decisions"`
}

// Resolve selects the surviving record from a group: highest quality score
// wins, and the stable sort keeps the first-seen record ahead on exact ties.
// Rejected records are returned unmodified.
func Resolve(group *Group) (survivor *agent.Record, rejected []*agent.Record, decision Decision) {
	ranked := make([]*agent.Record, len(group.Records))
	copy(ranked, group.Records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})

	survivor = ranked[0]
	rejected = ranked[1:]

	rejectedNames := make([]string, 0, len(rejected))
	for _, rec := range rejected {
		rejectedNames = append(rejectedNames, rec.DisplayName)
	}

	decision = Decision{
		Group:    SemanticKey(survivor.DisplayName),
		Selected: survivor.DisplayName,
		Score:    survivor.QualityScore,
		Rejected: rejectedNames,
		Reason:   fmt.Sprintf("Highest quality score (%d)", survivor.QualityScore),
	}
	return survivor, rejected, decision
}

// ResolveAll resolves every group and assembles the run's decision trail.
// Decisions are recorded only for groups that actually collapsed duplicates.
func ResolveAll(groups []*Group) (survivors []*agent.Record, report *Report) {
	report = &Report{Decisions: []Decision{}}

	for _, group := range groups {
		report.OriginalCount += group.Size()
		survivor, _, decision := Resolve(group)
		survivors = append(survivors, survivor)
		if !group.IsUnique() {
			report.DuplicateGroups++
			report.Decisions = append(report.Decisions, decision)
		}
	}

	report.UniqueCount = len(survivors)
	return survivors, report
}

// ExplainDiff renders a unified diff between the survivor's and a rejected
// record's opening content, for curators reviewing why a merge happened.
func ExplainDiff(survivor, rejected *agent.Record) string {
	left := prefix(survivor.BodyContent, contentPrefixLen)
	right := prefix(rejected.BodyContent, contentPrefixLen)
	if !strings.HasSuffix(left, "\n") {
		left += "\n"
	}
	if !strings.HasSuffix(right, "\n") {
		right += "\n"
	}
	return udiff.Unified(survivor.DisplayName, rejected.DisplayName, left, right)
}
