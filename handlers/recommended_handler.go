package handlers

import (
	"PlateTrail/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendedRoutes(router *gin.RouterGroup, recommendedController *controllers.RecommendedController) {
	recommendedGroup := router.Group("/recommended")
	{
		recommendedGroup.GET("", recommendedController.GetAllRecommended)
	}
}
