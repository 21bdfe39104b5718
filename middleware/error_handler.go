package middleware

import (
	"PlateTrail/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware handles errors attached to the context globally
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check whether an error was attached to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			// CustomError carries its own status code
			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			// Anything else is an Internal Server Error
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
