package route

import (
	"PlateTrail/controllers"
	"PlateTrail/handlers"
	"PlateTrail/middleware"
	"PlateTrail/services"
	"PlateTrail/storage"

	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all services, controllers and routes against the given
// store. The store is passed in explicitly; nothing here reaches for globals.
func RegisterRoutes(router *gin.Engine, store storage.Store, firebaseAuth *firebaseauth.Client, geocode *services.GeocodeService, jwtSecret string) {
	auditService := services.NewAuditService(store)
	authService := services.NewAuthService(store, firebaseAuth, jwtSecret)
	restaurantService := services.NewRestaurantService(store, geocode, auditService)
	ratingService := services.NewRatingService(store, auditService)
	userService := services.NewUserService(store)

	authController := controllers.NewAuthController(authService)
	visitedController := controllers.NewRestaurantController(restaurantService, ratingService, storage.ListVisited)
	toVisitController := controllers.NewRestaurantController(restaurantService, ratingService, storage.ListToVisit)
	recommendedController := controllers.NewRecommendedController(restaurantService)
	userController := controllers.NewUserController(userService)

	requireAuth := middleware.AuthMiddleware(authService)

	// Register the routes
	apiRoutes := router.Group("/api")
	{
		handlers.RegisterAuthRoutes(apiRoutes, authController)
		handlers.RegisterRestaurantRoutes(apiRoutes, "/restaurants", visitedController, requireAuth)
		handlers.RegisterRestaurantRoutes(apiRoutes, "/tovisit", toVisitController, requireAuth)
		handlers.RegisterRecommendedRoutes(apiRoutes, recommendedController)
		handlers.RegisterUserRoutes(apiRoutes, userController, requireAuth)
	}
}
