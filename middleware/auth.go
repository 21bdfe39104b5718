package middleware

import (
	"net/http"
	"strings"

	"PlateTrail/services"
	"PlateTrail/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the caller's userId in
// the context. The services re-check for an empty userId themselves, so a
// bypassed middleware still cannot mutate anything.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token required")
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header must be a Bearer token")
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}
