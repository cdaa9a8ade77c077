package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/core/apperror"
	"storefront/internal/infrastructure/http/v1/dto"
	"storefront/pkg/logger"
)

// ErrorHandler turns handler errors into failure envelopes. The mobile
// client switches on the status_code inside the body, so the HTTP status
// stays 200 for every enveloped response; known domain errors keep their
// message, everything else is sanitized.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}
			c.JSON(http.StatusOK, dto.Failure(appErr.Message))
			return
		}

		logger.Error(c.Request.Context(), "unhandled error", "error", err)
		c.JSON(http.StatusOK, dto.Failure("Internal server error"))
	}
}
