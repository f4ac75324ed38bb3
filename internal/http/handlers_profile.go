package http

import (
	"net/http"
	"strings"

	"smartspend/internal/core"
)

type profilePage struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Preferences core.Preferences `json:"preferences"`
}

type updateProfileRequest struct {
	Name        string            `json:"name"`
	Preferences *core.Preferences `json:"preferences,omitempty"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.accounts.CurrentUser(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	p, err := s.prefs.Load(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profilePage{Name: user.Name, Email: user.Email, Preferences: p})
}

// handleUpdateProfile mirrors the profile screen's save: re-check the
// session first, update the name, then write the preference flags.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx := r.Context()
	email, err := s.accounts.Session(ctx)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.accounts.UpdateUser(ctx, email, core.UserChanges{Name: name}); err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Preferences != nil {
		if err := s.prefs.Save(ctx, *req.Preferences); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	s.handleGetProfile(w, r)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := s.prefs.Load(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var p core.Preferences
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.prefs.Save(r.Context(), p); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
