package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/apperror"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondErrorMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondError maps the error taxonomy to HTTP statuses. Anything not
// in the taxonomy is logged and hidden behind a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		respondErrorMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrNotFound):
		respondErrorMsg(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrForbidden):
		respondErrorMsg(w, http.StatusForbidden, err.Error())
	default:
		log.Printf("[http] internal error: %v", err)
		respondErrorMsg(w, http.StatusInternalServerError, "Something went wrong!")
	}
}
