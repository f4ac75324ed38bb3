package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"smartspend/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps store errors onto HTTP statuses: duplicate
// accounts conflict, missing sessions are unauthorized, missing users are
// not found, validation failures are bad requests.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrDuplicateAccount):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, core.ErrNoSession):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, core.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case isValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		core.ErrInvalidEmail,
		core.ErrEmptyName,
		core.ErrEmptyPassword,
		core.ErrInvalidType,
		core.ErrInvalidAmount,
		core.ErrEmptyCategory,
		core.ErrInvalidDate,
		core.ErrInvalidCurrency,
		core.ErrInvalidWeekStart,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
