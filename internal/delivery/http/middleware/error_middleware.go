package middleware

import (
	"errors"
	"net/http"

	"go-careerpath-backend/internal/delivery/http/response"
	"go-careerpath-backend/pkg/apperror"
	"go-careerpath-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Internal details stay server-side; clients get a generic
				// message so error text cannot leak implementation state.
				logger.With("http").Error("unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
