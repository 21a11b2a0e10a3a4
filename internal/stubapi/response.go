package stubapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medibill/internal/domain"
)

// errorBody is the flat error shape the real backend returns.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain error to its HTTP status and error body.
func respondError(c *gin.Context, err error) {
	status, code, msg := mapDomainError(err)
	c.JSON(status, errorBody{Code: code, Message: msg})
}

func mapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "DUPLICATE_USERNAME", "username already exists"
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, "MISSING_FIELD", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}
