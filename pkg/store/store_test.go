package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
)

func testIndex() *collection.Index {
	return &collection.Index{
		TotalAgents: 3,
		Categories: map[string]map[string]int{
			"languages": {"python": 1, "rust": 1},
			"tasks":     {"testing": 1},
		},
		Agents: []collection.Entry{
			{
				ID: 1, Name: "python-pro", Description: "Expert Python development and automation",
				Category: "languages", Subcategory: "python",
				Tools: []string{"Bash", "Edit"}, Source: "wshobson_agents", QualityScore: 55,
				Path: "languages/python/001_python-pro.md",
			},
			{
				ID: 2, Name: "rust-engineer", Description: "Systems programming in Rust",
				Category: "languages", Subcategory: "rust",
				Tools: []string{}, Source: "voltagent", QualityScore: 48,
				Path: "languages/rust/002_rust-engineer.md",
			},
			{
				ID: 3, Name: "jest-runner", Description: "JavaScript test suites with Jest",
				Category: "tasks", Subcategory: "testing",
				Tools: []string{"Bash"}, Source: "0xfurai", QualityScore: 30,
				Path: "tasks/testing/003_jest-runner.md",
			},
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReplaceAndCount(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Replace(ctx, testIndex()))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// A second replace swaps, not appends.
	require.NoError(t, s.Replace(ctx, testIndex()))
	count, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestQueryByCategory(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Replace(ctx, testIndex()))

	rows, err := s.Query(ctx, Filter{Category: "languages"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "python-pro", rows[0].Name)
	assert.Equal(t, "rust-engineer", rows[1].Name)

	rows, err = s.Query(ctx, Filter{Category: "languages", Subcategory: "rust"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "rust-engineer", rows[0].Name)
}

func TestQueryByKeyword(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Replace(ctx, testIndex()))

	rows, err := s.Query(ctx, Filter{Keyword: "PYTHON"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "python-pro", rows[0].Name)

	// Keyword also matches descriptions.
	rows, err = s.Query(ctx, Filter{Keyword: "systems"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "rust-engineer", rows[0].Name)
}

func TestQueryLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Replace(ctx, testIndex()))

	rows, err := s.Query(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestQueryNoMatch(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Replace(ctx, testIndex()))

	rows, err := s.Query(ctx, Filter{Category: "frameworks"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Replace(ctx, testIndex()))

	row, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "python-pro", row.Name)
	assert.Equal(t, []string{"Bash", "Edit"}, row.ToolList())
	assert.Equal(t, 55, row.QualityScore)

	missing, err := s.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestToolListEmpty(t *testing.T) {
	row := Row{Tools: "[]"}
	assert.Equal(t, []string{}, row.ToolList())

	row = Row{Tools: "not json"}
	assert.Equal(t, []string{}, row.ToolList())
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.db")

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s1.Replace(ctx, testIndex()))
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	count, err := s2.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
