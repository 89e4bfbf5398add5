package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gstippagol/habit/internal/domain/entity"
)

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"habit not found", entity.ErrHabitNotFound, http.StatusNotFound},
		{"user not found", entity.ErrUserNotFound, http.StatusNotFound},
		{"empty title", entity.ErrEmptyTitle, http.StatusBadRequest},
		{"malformed date", fmt.Errorf("%w: %q", entity.ErrMalformedDate, "17/01/2024"), http.StatusBadRequest},
		{"future date", entity.ErrFutureDate, http.StatusConflict},
		{"window closed", entity.ErrWindowClosed, http.StatusConflict},
		{"pre creation", entity.ErrPreCreation, http.StatusConflict},
		{"invalid transition", entity.ErrInvalidTransition, http.StatusConflict},
		{"habit deleted", entity.ErrHabitDeleted, http.StatusConflict},
		{"email taken", entity.ErrEmailTaken, http.StatusConflict},
		{"bad credentials", entity.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
