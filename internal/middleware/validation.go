package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/minilms/internal/pkg/apperrors"
)

// BindJSON binds and validates the request body into obj. On failure it
// writes a 400 validation envelope and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, apperrors.NewValidationError(err))
		return false
	}
	return true
}
