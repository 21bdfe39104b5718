package controllers

import (
	"PlateTrail/services"
	"PlateTrail/storage"
	"PlateTrail/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecommendedController serves the read-only seeded suggestions list.
type RecommendedController struct {
	RestaurantService *services.RestaurantService
}

func NewRecommendedController(restaurantService *services.RestaurantService) *RecommendedController {
	return &RecommendedController{
		RestaurantService: restaurantService,
	}
}

func (r *RecommendedController) GetAllRecommended(c *gin.Context) {
	recommended, err := r.RestaurantService.GetAll(c, storage.ListRecommended)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recommendations fetched successfully", recommended)
}
