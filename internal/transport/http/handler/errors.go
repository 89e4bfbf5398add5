package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// handleServiceError maps domain errors to HTTP status codes
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrHabitNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrEmptyTitle),
		errors.Is(err, entity.ErrMalformedDate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrFutureDate),
		errors.Is(err, entity.ErrWindowClosed),
		errors.Is(err, entity.ErrPreCreation),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrHabitDeleted),
		errors.Is(err, entity.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
