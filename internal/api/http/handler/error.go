package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
)

// statusFor maps domain errors to HTTP status codes and client-safe messages.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrDuplicateAccount):
		return http.StatusConflict, model.ErrDuplicateAccount.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, model.ErrInvalidCredentials.Error()
	case errors.Is(err, model.ErrAccountNotFound):
		return http.StatusNotFound, model.ErrAccountNotFound.Error()
	case errors.Is(err, model.ErrBookingNotFound):
		return http.StatusNotFound, model.ErrBookingNotFound.Error()
	case errors.Is(err, model.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, model.ErrStorageUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}
	respondError(w, log, status, message)
}
