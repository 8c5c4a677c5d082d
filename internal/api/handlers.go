package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/itsmostafa/foldertree/internal/outline"
	"github.com/itsmostafa/foldertree/internal/script"
)

type outlineRequest struct {
	Outline string `json:"outline"`
}

type renderResponse struct {
	Tree   string         `json:"tree"`
	Lines  []string       `json:"lines"`
	Script []string       `json:"script"`
	Nodes  outline.Forest `json:"nodes"`
	Count  int            `json:"count"`
	Depth  int            `json:"depth"`
}

// handleRender runs the full pipeline and returns tree, script and forest.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOutline(w, r)
	if !ok {
		return
	}

	res := outline.Build(req.Outline)

	resp := renderResponse{
		Tree:   res.TreeString(),
		Lines:  res.Tree,
		Script: res.Script.Lines(),
		Nodes:  res.Forest,
		Count:  res.Forest.Count(),
		Depth:  res.Forest.Depth(),
	}
	// Empty outlines encode as lists, not null
	if resp.Lines == nil {
		resp.Lines = []string{}
	}
	if resp.Nodes == nil {
		resp.Nodes = outline.Forest{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleScript returns the folder script as a downloadable attachment.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOutline(w, r)
	if !ok {
		return
	}

	res := outline.Build(req.Outline)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.ScriptName))
	if err := script.Write(w, res.Script); err != nil {
		s.log.Warn("failed to write script response", "error", err)
	}
}

func (s *Server) decodeOutline(w http.ResponseWriter, r *http.Request) (outlineRequest, bool) {
	var req outlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return req, false
		}
		jsonError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
