package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/dedupe"
)

func fixtureServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	makeRecord := func(name, category, subcategory string) *agent.Record {
		content := "---\nname: " + name + "\ndescription: Agent " + name + "\n---\n\nYou are " + name + ".\n"
		rec := agent.NewRecord("/src/"+name+".md", "testsource", content)
		rec.Category = category
		rec.Subcategory = subcategory
		return rec
	}

	_, err := collection.NewWriter(dir).Write([]*agent.Record{
		makeRecord("python-pro", "languages", "python"),
		makeRecord("debugger", "tasks", "debugging"),
	}, &dedupe.Report{OriginalCount: 2, UniqueCount: 2})
	require.NoError(t, err)

	s, err := New(dir)
	require.NoError(t, err)
	return s
}

func TestHandleIndex(t *testing.T) {
	s := fixtureServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/index")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var index collection.Index
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&index))
	assert.Equal(t, 2, index.TotalAgents)
}

func TestHandleAgent(t *testing.T) {
	s := fixtureServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/agents/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry collection.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "python-pro", entry.Name)
	assert.Equal(t, "languages", entry.Category)
}

func TestHandleAgentNotFound(t *testing.T) {
	s := fixtureServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/agents/99")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAgentBadID(t *testing.T) {
	s := fixtureServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	// Non-numeric ids never reach the handler.
	resp, err := http.Get(ts.URL + "/api/agents/not-a-number")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAgentContent(t *testing.T) {
	s := fixtureServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/agents/2/content")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/markdown")

	var buf [4096]byte
	n, _ := resp.Body.Read(buf[:])
	assert.Contains(t, string(buf[:n]), "name: debugger")
}

func TestNewMissingIndex(t *testing.T) {
	_, err := New(t.TempDir())
	assert.Error(t, err)
}
