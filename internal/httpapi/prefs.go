package httpapi

import (
	"net/http"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/i18n"
)

type preferencesView struct {
	Language i18n.Language `json:"language"`
	Theme    domain.Theme  `json:"theme"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	sid := sessionFrom(r).ID
	writeJSON(w, http.StatusOK, preferencesView{
		Language: s.deps.Prefs.Language(r.Context(), sid, r.Header.Get("Accept-Language")),
		Theme:    s.deps.Prefs.Theme(r.Context(), sid),
	})
}

func (s *Server) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	l, err := s.deps.Prefs.SetLanguage(r.Context(), sessionFrom(r).ID, req.Language)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, languageRequest{Language: string(l)})
}

func (s *Server) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t, err := s.deps.Prefs.SetTheme(r.Context(), sessionFrom(r).ID, req.Theme)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeRequest{Theme: string(t)})
}
