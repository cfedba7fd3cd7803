// Package server exposes a read-only HTTP API over a generated collection:
// the index document, per-agent metadata, and the raw agent files.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
)

// Server serves one collection directory.
type Server struct {
	baseDir string
	index   *collection.Index
}

// New creates a Server for the collection at baseDir. The index is loaded
// once at startup; restart the server after regenerating the collection.
func New(baseDir string) (*Server, error) {
	index, err := collection.LoadIndex(filepath.Join(baseDir, collection.IndexFile))
	if err != nil {
		return nil, err
	}
	return &Server{baseDir: baseDir, index: index}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/index", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/agents/{id:[0-9]+}", s.handleAgent).Methods(http.MethodGet)
	r.HandleFunc("/api/agents/{id:[0-9]+}/content", s.handleAgentContent).Methods(http.MethodGet)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.index)
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	entry := s.lookup(r)
	if entry == nil {
		s.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "agent not found"})
		return
	}
	s.writeJSON(w, r, http.StatusOK, entry)
}

func (s *Server) handleAgentContent(w http.ResponseWriter, r *http.Request) {
	entry := s.lookup(r)
	if entry == nil {
		s.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": "agent not found"})
		return
	}

	path := filepath.Join(s.baseDir, collection.AgentsDir, filepath.FromSlash(entry.Path))
	data, err := os.ReadFile(path)
	if err != nil {
		logger.G(r.Context()).WithField("path", path).WithError(err).Error("Failed to read agent file")
		s.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "agent file unreadable"})
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// lookup resolves the {id} path variable to an index entry, or nil.
func (s *Server) lookup(r *http.Request) *collection.Entry {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return nil
	}
	for i := range s.index.Agents {
		if s.index.Agents[i].ID == id {
			return &s.index.Agents[i]
		}
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.G(r.Context()).WithError(err).Error("Failed to encode response")
	}
}
