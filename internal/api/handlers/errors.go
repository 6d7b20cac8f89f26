package handlers

import (
	"errors"
	"net/http"

	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorMessages overrides the default message per failure class.
type errorMessages struct {
	NotFound  string
	Forbidden string
}

// writeServiceError renders a service error into the response envelope.
func writeServiceError(c *gin.Context, log *zap.Logger, err error, msgs errorMessages) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(c, http.StatusBadRequest, "Validation error",
			dto.FieldError{Field: validationErr.Field, Message: validationErr.Message})
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusBadRequest, "Invalid status transition")
	case errors.Is(err, services.ErrJobClosed):
		respondError(c, http.StatusBadRequest, "This job is no longer accepting applications")
	case errors.Is(err, services.ErrAlreadyApplied):
		respondError(c, http.StatusConflict, "You have already applied for this job")
	case errors.Is(err, services.ErrEmailTaken):
		respondError(c, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, services.ErrConflict):
		respondError(c, http.StatusConflict, "Resource conflict")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrUnauthenticated):
		respondError(c, http.StatusUnauthorized, "Invalid token. User not found.")
	case errors.Is(err, services.ErrLogoutUnavailable):
		respondError(c, http.StatusNotImplemented,
			"Logout is unavailable: tokens cannot be revoked on this server. Discard the token client-side.")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, orDefault(msgs.Forbidden, "Access denied"))
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, orDefault(msgs.NotFound, "Resource not found"))
	default:
		log.Error("unhandled service error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
