package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

// statusFor maps a domain error kind onto its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrWindowClosed),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Respond writes err as an HTTPError. Anything that is not a domain error
// is reported as internal and attached to the gin context for the logger.
func Respond(c *gin.Context, err error) {
	if de, ok := domain.AsError(err); ok {
		Write(c, statusFor(de), de.Code, de.Reason)
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "unexpected error")
}
