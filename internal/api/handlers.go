package api

import (
	"encoding/json"
	goerrors "errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
	"github.com/puzzlecut/puzzlecut/pkg/store"
)

// errorResponse is the JSON body returned for all error statuses.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// createResponse wraps the stored puzzle with its cache provenance.
type createResponse struct {
	Puzzle    *puzzle.Puzzle `json:"puzzle"`
	FromCache bool           `json:"from_cache"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreate generates a puzzle from the posted options and stores it.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidPuzzle, err, "decode request body"))
		return
	}

	p, hit, err := s.runner.GenerateWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.Put(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{Puzzle: p, FromCache: hit})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderSVG re-renders a stored puzzle. Rendering is deterministic from
// the document, so repeated requests produce identical bytes.
func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}

	opts := renderOptsFromQuery(r)
	opts.Formats = []string{pipeline.FormatSVG}
	artifacts, err := s.runner.Render(r.Context(), p, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

func (s *Server) handleRenderDOT(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}

	opts := renderOptsFromQuery(r)
	opts.Formats = []string{pipeline.FormatDOT}
	artifacts, err := s.runner.Render(r.Context(), p, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write(artifacts[pipeline.FormatDOT])
}

func (s *Server) loadPuzzle(w http.ResponseWriter, r *http.Request) (*puzzle.Puzzle, bool) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return p, true
}

func renderOptsFromQuery(r *http.Request) pipeline.Options {
	q := r.URL.Query()
	return pipeline.Options{
		Stroke:   q.Get("stroke"),
		Labels:   q.Get("labels") == "true",
		Fill:     q.Get("fill") == "true",
		Detailed: q.Get("detailed") == "true",
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case goerrors.Is(err, store.ErrNotFound) || code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case strings.HasPrefix(string(code), "INVALID_"):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}
