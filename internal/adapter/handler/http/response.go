package http

import (
	"errors"
	"net/http"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// statusForError maps the domain error kinds deterministically to HTTP
// statuses. Anything outside the enumeration is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicatePlate),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrWrongPassword):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError reports a service failure. Known kinds keep their message;
// unexpected failures are logged in full and reported generically.
func respondError(c *gin.Context, logger ports.LoggerPort, op string, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Unexpected failure", map[string]interface{}{
			"op":    op,
			"error": err.Error(),
		})
		message = "internal server error"
	}
	newErrorResponse(c, status, message)
}
