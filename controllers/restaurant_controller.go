package controllers

import (
	"PlateTrail/models"
	"PlateTrail/services"
	"PlateTrail/storage"
	"PlateTrail/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RestaurantController serves one restaurant list. It is instantiated twice,
// once for the visited list and once for the to-visit list; the rating mode
// follows from the list.
type RestaurantController struct {
	RestaurantService *services.RestaurantService
	RatingService     *services.RatingService
	List              storage.List
}

func NewRestaurantController(restaurantService *services.RestaurantService, ratingService *services.RatingService, list storage.List) *RestaurantController {
	return &RestaurantController{
		RestaurantService: restaurantService,
		RatingService:     ratingService,
		List:              list,
	}
}

func (r *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := r.RestaurantService.GetAll(c, r.List)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurants fetched successfully", restaurants)
}

func (r *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurant, err := r.RestaurantService.GetByID(c, r.List, c.Param("id"))
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant fetched successfully", restaurant)
}

func (r *RestaurantController) CreateRestaurant(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var input models.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Name and address are required")
		return
	}

	created, err := r.RestaurantService.Create(c, r.List, userId.(string), input)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Restaurant created successfully", created)
}

func (r *RestaurantController) UpdateRestaurant(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var input models.RestaurantUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := r.RestaurantService.Update(c, r.List, userId.(string), c.Param("id"), input)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant updated successfully", updated)
}

func (r *RestaurantController) DeleteRestaurant(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	if err := r.RestaurantService.Delete(c, r.List, userId.(string), c.Param("id")); err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurant deleted successfully", gin.H{"success": true})
}

func (r *RestaurantController) SubmitRating(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Rating is required")
		return
	}

	updated, err := r.RatingService.SubmitRating(c, r.List, c.Param("id"), userId.(string), input)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rating submitted successfully", updated)
}
