package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// sessionError writes the generic unavailable response for pre-content
// failures and a plain error for everything else. The real cause is logged
// by the controller, never exposed.
func (s *Server) sessionError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusNotFound {
		s.errorResponse(w, status, unavailableMessage)
		return
	}
	s.errorResponse(w, status, err.Error())
}

// handleSession runs the session state machine and returns the view model.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.controller.Run(r.Context(), r.URL.Query())
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

// markStepRequest is the optional body of a step-completion event. The
// message carries the live share text as edited by the user.
type markStepRequest struct {
	Message string `json:"message"`
}

// handleMarkStep applies a one-shot step-completion transition.
func (s *Server) handleMarkStep(w http.ResponseWriter, r *http.Request) {
	step := r.PathValue("step")

	var req markStepRequest
	if r.Body != nil {
		// An absent or malformed body means "use the default message".
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	sv, err := s.controller.MarkStep(r.Context(), r.URL.Query(), step, req.Message)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sv)
}

// handleShareLink recomputes the share URL from the live message text.
func (s *Server) handleShareLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	link, err := s.controller.ShareLink(q, q.Get("message"))
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"shareUrl": link})
}

// handlePreview serves the rendered first page. A renderer failure answers
// with a fallback payload instead of an error: the client switches the
// preview region to an open-externally link and the session stays usable.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	view, err := s.controller.Run(r.Context(), r.URL.Query())
	if err != nil {
		s.sessionError(w, err)
		return
	}

	if !view.Preview.Available {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"fallback": true,
			"pdfUrl":   view.Preview.FallbackURL,
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(view.Preview.PNG); err != nil {
		log.Printf("[server] error writing preview: %v", err)
	}
}
