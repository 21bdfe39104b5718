package handlers

import (
	"PlateTrail/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRestaurantRoutes wires one restaurant list under path. Reads are
// public, every mutation goes through the auth middleware. Registered twice:
// /restaurants (visited) and /tovisit.
func RegisterRestaurantRoutes(router *gin.RouterGroup, path string, restaurantController *controllers.RestaurantController, requireAuth gin.HandlerFunc) {
	restaurantGroup := router.Group(path)
	{
		restaurantGroup.GET("", restaurantController.GetAllRestaurants)
		restaurantGroup.GET("/:id", restaurantController.GetRestaurantByID)

		restaurantGroup.POST("", requireAuth, restaurantController.CreateRestaurant)
		restaurantGroup.PUT("/:id", requireAuth, restaurantController.UpdateRestaurant)
		restaurantGroup.DELETE("/:id", requireAuth, restaurantController.DeleteRestaurant)
		restaurantGroup.POST("/:id/ratings", requireAuth, restaurantController.SubmitRating)
	}
}
