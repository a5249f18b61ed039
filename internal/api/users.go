package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstrand/trackpoint-core/internal/auth"
)

// handleRegisterUser creates a new user account.
//
// Duplicate email addresses respond 409; the account that already holds the
// address is never modified.
func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if _, err := s.directory.Register(r.Context(), req.Email, req.Password, req.Name); err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		if errors.Is(err, auth.ErrEmailExists) {
			writeConflict(w, "email already registered")
			return
		}
		writeInternalError(w, "failed to register user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "User registered"})
}

// handleLogin verifies a user's credentials.
//
// Unknown email and wrong password produce the same 401 response, so the
// endpoint cannot be used to probe which addresses have accounts.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	identity, err := s.directory.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeUnauthorized(w, "invalid credentials")
			return
		}
		writeInternalError(w, "failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, identity)
}
