package dedupe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

func TestGroupRecordsCoverage(t *testing.T) {
	records := []*agent.Record{
		named("python-pro", "Python body with plenty of unique wording about venvs."),
		named("rust-engineer", "Rust body covering ownership and borrow checking rules."),
		named("python-expert", "A different python body about asyncio and typing."),
		named("code-reviewer", "You review code diffs and leave actionable comments."),
	}

	groups := GroupRecords(records)

	total := 0
	seen := map[*agent.Record]int{}
	for _, g := range groups {
		total += g.Size()
		for _, rec := range g.Records {
			seen[rec]++
		}
	}
	assert.Equal(t, len(records), total, "sum of group sizes equals input size")
	for rec, count := range seen {
		assert.Equal(t, 1, count, "record %s must appear in exactly one group", rec.DisplayName)
	}
}

func TestGroupRecordsExactKey(t *testing.T) {
	records := []*agent.Record{
		named("python-pro", "First python body, written by one author."),
		named("python-expert", "Second python body, written by somebody else entirely."),
	}

	groups := GroupRecords(records)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Size())
}

func TestGroupRecordsSubstringName(t *testing.T) {
	records := []*agent.Record{
		named("python", "Body number one, quite specific phrasing here."),
		named("python-backend-engineer-specialist", "Body number two from another source."),
	}

	groups := GroupRecords(records)
	require.Len(t, groups, 1)
}

func TestGroupRecordsPreservesNonDuplicates(t *testing.T) {
	records := []*agent.Record{
		named("python-pro", "You are a Python expert. Idiomatic patterns, type hints, pytest."),
		named("rust-engineer", "Ownership, borrowing and lifetimes guide every recommendation."),
	}

	groups := GroupRecords(records)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].IsUnique())
	assert.True(t, groups[1].IsUnique())
}

func TestGroupRecordsSeedOnlyMatching(t *testing.T) {
	// B matches seed A and C matches B, but C does not match A. The
	// seed-only rule keeps C out of A's group: grouping is deliberately
	// not a transitive closure.
	sharedBody := "You orchestrate extract-transform-load jobs and monitor their runs."
	seed := named("data", "Seed body, short and particular, nothing like the others.")
	bridge := named("data-pipeline", sharedBody)
	far := named("etl-orchestrator", sharedBody)

	require.True(t, IsDuplicate(seed, bridge), "bridge matches the seed by name containment")
	require.True(t, IsDuplicate(bridge, far), "far matches the bridge")
	require.False(t, IsDuplicate(seed, far), "far does not match the seed")

	groups := GroupRecords([]*agent.Record{seed, bridge, far})
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].Size())
	assert.Same(t, far, groups[1].Seed())
}

func TestGroupRecordsIdempotent(t *testing.T) {
	records := []*agent.Record{
		named("python-pro", "Alpha body content with some words."),
		named("python-expert", "Beta body content with other words."),
		named("rust-engineer", "Gamma body about systems programming."),
		named("code-reviewer", "You review pull requests line by line."),
	}

	first := GroupRecords(records)
	second := GroupRecords(records)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Size(), second[i].Size())
		for j := range first[i].Records {
			assert.Same(t, first[i].Records[j], second[i].Records[j])
		}
	}
}

func TestGroupRecordsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupRecords(nil))
}

func TestGroupRecordsLargerBatchCoverage(t *testing.T) {
	var records []*agent.Record
	for i := 0; i < 40; i++ {
		records = append(records, named(
			fmt.Sprintf("agent-%c-%d", 'a'+i%13, i),
			fmt.Sprintf("Body %d with filler text unique to this record: %d%d.", i, i*7, i*13),
		))
	}

	groups := GroupRecords(records)
	total := 0
	for _, g := range groups {
		total += g.Size()
	}
	assert.Equal(t, len(records), total)
}
