package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/rsrvd-site/internal/i18n"
)

type openChatRequest struct {
	Language string `json:"language"`
}

type chatMessageRequest struct {
	Text string `json:"text"`
}

type chatEmailRequest struct {
	Email string `json:"email"`
}

// openChat uses the requested language, else the visitor's preference.
func (s *Server) openChat(w http.ResponseWriter, r *http.Request) {
	var req openChatRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	var lang i18n.Language
	if req.Language != "" {
		l, err := i18n.Parse(req.Language)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		lang = l
	} else {
		lang = s.deps.Prefs.Language(r.Context(), sessionFrom(r).ID, r.Header.Get("Accept-Language"))
	}

	writeJSON(w, http.StatusCreated, s.deps.Chat.Open(lang))
}

func (s *Server) getChat(w http.ResponseWriter, r *http.Request) {
	conv, err := s.deps.Chat.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (s *Server) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := s.deps.Chat.Send(chi.URLParam(r, "id"), req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) setChatEmail(w http.ResponseWriter, r *http.Request) {
	var req chatEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.deps.Chat.SetEmail(chi.URLParam(r, "id"), req.Email); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) closeChat(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Chat.Close(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
