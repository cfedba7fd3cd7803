package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
)

func scored(name string, score int) *agent.Record {
	rec := named(name, "body of "+name)
	rec.QualityScore = score
	return rec
}

func TestResolvePicksHighestScore(t *testing.T) {
	low := scored("python-pro", 30)
	high := scored("python-expert", 45)
	group := &Group{Records: []*agent.Record{low, high}}

	survivor, rejected, decision := Resolve(group)

	assert.Same(t, high, survivor)
	require.Len(t, rejected, 1)
	assert.Same(t, low, rejected[0])

	assert.Equal(t, "python", decision.Group)
	assert.Equal(t, "python-expert", decision.Selected)
	assert.Equal(t, 45, decision.Score)
	assert.Equal(t, []string{"python-pro"}, decision.Rejected)
	assert.Equal(t, "Highest quality score (45)", decision.Reason)
}

func TestResolveTieBreakKeepsFirstSeen(t *testing.T) {
	first := scored("api-pro", 40)
	second := scored("api-expert", 55)
	third := scored("api-developer", 55)
	group := &Group{Records: []*agent.Record{first, second, third}}

	survivor, rejected, _ := Resolve(group)

	assert.Same(t, second, survivor, "first 55-scored record wins on a tie")
	require.Len(t, rejected, 2)
	assert.Same(t, third, rejected[0])
	assert.Same(t, first, rejected[1])
}

func TestResolveDoesNotMutateGroupOrder(t *testing.T) {
	a := scored("go-pro", 10)
	b := scored("go-expert", 99)
	group := &Group{Records: []*agent.Record{a, b}}

	Resolve(group)

	assert.Same(t, a, group.Records[0])
	assert.Same(t, b, group.Records[1])
}

func TestResolveAll(t *testing.T) {
	groups := []*Group{
		{Records: []*agent.Record{scored("python-pro", 30), scored("python-expert", 45)}},
		{Records: []*agent.Record{scored("rust-engineer", 50)}},
	}

	survivors, report := ResolveAll(groups)

	require.Len(t, survivors, 2)
	assert.Equal(t, "python-expert", survivors[0].DisplayName)
	assert.Equal(t, "rust-engineer", survivors[1].DisplayName)

	assert.Equal(t, 3, report.OriginalCount)
	assert.Equal(t, 2, report.UniqueCount)
	assert.Equal(t, 1, report.DuplicateGroups)
	require.Len(t, report.Decisions, 1, "unique groups produce no decision entries")
	assert.Equal(t, []string{"python-pro"}, report.Decisions[0].Rejected)
}

func TestResolveAllIdempotent(t *testing.T) {
	records := []*agent.Record{
		scored("python-pro", 30),
		scored("python-expert", 45),
		scored("rust-engineer", 50),
	}

	s1, r1 := ResolveAll(GroupRecords(records))
	s2, r2 := ResolveAll(GroupRecords(records))

	require.Equal(t, len(s1), len(s2))
	for i := range s1 {
		assert.Same(t, s1[i], s2[i])
	}
	assert.Equal(t, r1.Decisions, r2.Decisions)
}

func TestExplainDiff(t *testing.T) {
	a := named("python-pro", "You are a Python expert.\nPrefer type hints.\n")
	b := named("python-expert", "You are a Python expert.\nPrefer dataclasses.\n")

	diff := ExplainDiff(a, b)
	assert.Contains(t, diff, "python-pro")
	assert.Contains(t, diff, "python-expert")
	assert.Contains(t, diff, "-Prefer type hints.")
	assert.Contains(t, diff, "+Prefer dataclasses.")
}
