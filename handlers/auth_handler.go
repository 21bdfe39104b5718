package handlers

import (
	"PlateTrail/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.RegisterUser)
		authGroup.POST("/login", authController.LoginUser)
		authGroup.POST("/google", authController.GoogleLogin)
	}

}
