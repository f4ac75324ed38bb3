package http

import (
	"net/http"
	"strings"

	"smartspend/internal/core"
	"smartspend/internal/log"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// profileResponse is User without the password.
type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// handleSignup creates the account and logs it straight in, the same
// two-step flow the signup screen uses. The two writes are independent;
// there is no atomicity across them.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := core.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	ctx := r.Context()
	if err := s.accounts.CreateUser(ctx, user); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.accounts.SetLoggedIn(ctx, user.Email); err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Account created but session not set",
			log.FieldEmail, core.NormalizeEmail(user.Email), log.FieldError, err.Error())
		writeError(w, http.StatusInternalServerError, "account created, login failed")
		return
	}

	writeJSON(w, http.StatusCreated, profileResponse{Name: user.Name, Email: user.Email})
}

// handleLogin compares the stored password byte for byte, like the login
// screen does.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	user, err := s.accounts.FindUser(ctx, strings.TrimSpace(req.Email))
	if err != nil || user.Password != req.Password {
		// One message for both cases, no account probing.
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	// Session stores the email casing from the record, not the input.
	if err := s.accounts.SetLoggedIn(ctx, user.Email); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Name: user.Name, Email: user.Email})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.accounts.SignOut(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
