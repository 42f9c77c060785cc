package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Every
// business failure wraps one of the five error kinds, so controllers
// never translate errors themselves. Dependency failures are the only
// kind logged as errors; the rest are ordinary request outcomes.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		if custom.Details != nil {
			details = custom.Details
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, details)
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, message, details)
	case errors.Is(err, apperrors.ErrForbidden):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message, details)
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message, details)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials", nil)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", nil)
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token", nil)
	case errors.Is(err, apperrors.ErrDependency):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Dependency failure")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, message, nil)
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string, details interface{}) {
	errorDetail := dto.NewErrorDetail(code, message)
	if details != nil {
		errorDetail = errorDetail.WithDetails(details)
	}
	c.JSON(status, dto.APIResponse{
		Error:     errorDetail,
		Timestamp: time.Now(),
	})
}

// HandleValidationError renders gin binding failures as 400 responses
func HandleValidationError(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid request format", FormatBindingError(err))
}
