package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/minilms/internal/app/models/dto"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to status codes and writes the error envelope.
// Unknown errors become a 500 and are logged; their text is not exposed.
func HandleAPIError(c *gin.Context, err error) {
	var ce *apperrors.CustomError
	errors.As(err, &ce)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound,
			withCustomDetails(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.MessageOf(err)), ce))
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeConflict, apperrors.MessageOf(err)))
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.HandleValidationError(err))
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest,
			withCustomDetails(dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.MessageOf(err)), ce))
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
				WithSeverity(dto.ErrorSeverityCritical))
	}
}

// Recovery turns panics into a logged 500 with the standard error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
				WithSeverity(dto.ErrorSeverityCritical))
	})
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}

func withCustomDetails(detail *dto.ErrorDetail, ce *apperrors.CustomError) *dto.ErrorDetail {
	if ce != nil && ce.Details != nil {
		return detail.WithDetails(ce.Details)
	}
	return detail
}
