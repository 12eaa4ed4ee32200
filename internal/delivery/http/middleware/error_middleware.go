package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harsh-gitaccount/orivanta-website/internal/delivery/http/response"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/apperror"
	"github.com/Harsh-gitaccount/orivanta-website/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		requestID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// Wrapped transport or template errors are logged server-side
			// only; the caller never sees internal detail.
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"error", appErr.Err,
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", requestID,
				)
			}
			if len(appErr.Errors) > 0 {
				response.ValidationError(c, appErr.Code, appErr.Message, appErr.Errors)
				return
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected internal error",
			"error", err,
			"path", c.FullPath(),
			"request_id", requestID,
		)
		response.Error(c, http.StatusInternalServerError, "Internal server error. Please try again later.")
	}
}
