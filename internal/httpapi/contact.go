package httpapi

import (
	"net/http"

	"github.com/TemirB/rsrvd-site/internal/domain"
)

// submitContact answers once the message is delivered; the confirmation
// toast lands in the session inbox.
func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !decodeJSON(w, r, &msg) {
		return
	}
	sess := sessionFrom(r)
	if err := s.deps.Contact.Submit(r.Context(), msg, sess.Inbox); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
