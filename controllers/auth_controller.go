package controllers

import (
	"PlateTrail/models"
	"PlateTrail/services"
	"PlateTrail/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

func (a *AuthController) RegisterUser(c *gin.Context) {
	var credentials models.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	response, err := a.AuthService.Register(c, credentials.Username, credentials.Password)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", response)
}

func (a *AuthController) LoginUser(c *gin.Context) {
	var credentials models.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	response, err := a.AuthService.Login(c, credentials.Username, credentials.Password)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}

func (a *AuthController) GoogleLogin(c *gin.Context) {
	var body struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "idToken is required")
		return
	}

	response, err := a.AuthService.GoogleLogin(c, body.IDToken)
	if err != nil {
		utils.ErrorFrom(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}
