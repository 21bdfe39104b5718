package handlers

import (
	"PlateTrail/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController, requireAuth gin.HandlerFunc) {
	userGroup := router.Group("/profile")
	{
		userGroup.GET("", requireAuth, userController.GetUserProfile)
	}
}
