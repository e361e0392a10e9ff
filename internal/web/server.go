// Package web serves a read-only view of the registry environment over HTTP.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"regtools/internal/envvars"
	"regtools/internal/model"
	"regtools/internal/tui"
	"regtools/internal/winreg"
)

// DefaultAddr is used when --addr is not given.
const DefaultAddr = "localhost:8080"

// Server rescans the registry on every request; nothing is cached between requests.
type Server struct {
	Registry winreg.Registry
	Log      *log.Logger
}

// Handler returns the routes of the view.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/variables", s.handleVariables)
	mux.HandleFunc("GET /api/variables/{index}", s.handleVariable)
	mux.HandleFunc("GET /api/version", s.handleVersion)
	return mux
}

// ListenAndServe blocks serving the view on addr.
func (s *Server) ListenAndServe(addr string) error {
	if s.Log != nil {
		s.Log.Info("serving environment view", "url", "http://"+addr)
	}
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := envvars.Scan(s.Registry)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := tui.Print(w, snap, 120, tui.PlainStyles()); err != nil && s.Log != nil {
		s.Log.Warn("write response", "err", err)
	}
}

type variablesResponse struct {
	envvars.Snapshot
	Errors  map[string]string `json:"errors,omitempty"`
	Version string            `json:"version"`
}

func (s *Server) handleVariables(w http.ResponseWriter, r *http.Request) {
	snap := envvars.Scan(s.Registry)
	resp := variablesResponse{Snapshot: snap, Version: model.Version}
	for _, scope := range model.Scopes {
		if err := snap.Err(scope); err != nil {
			if resp.Errors == nil {
				resp.Errors = make(map[string]string)
			}
			resp.Errors[scope.String()] = err.Error()
		}
	}
	s.writeJSON(w, resp)
}

func (s *Server) handleVariable(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "index must be a number", 400)
		return
	}
	v, ok := envvars.Scan(s.Registry).Resolve(index)
	if !ok {
		http.Error(w, "invalid index", 404)
		return
	}
	s.writeJSON(w, v)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": model.Version})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil && s.Log != nil {
		s.Log.Warn("write response", "err", err)
	}
}
