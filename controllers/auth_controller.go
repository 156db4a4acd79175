package controllers

import (
	"gin-bomtracker/constants"
	"gin-bomtracker/dto"
	"gin-bomtracker/middlewares"
	"gin-bomtracker/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Status(ctx *gin.Context)
	Setup(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Disable(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Status(ctx *gin.Context) {
	status, err := c.service.Status(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (c *AuthController) Setup(ctx *gin.Context) {
	var input dto.SetupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	result, err := c.service.Setup(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	result, err := c.service.Login(ctx.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *AuthController) Logout(ctx *gin.Context) {
	tokenString := ctx.GetString(constants.ContextTokenKey)
	if tokenString == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return
	}

	if err := c.service.Logout(ctx.Request.Context(), tokenString); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (c *AuthController) Disable(ctx *gin.Context) {
	if err := c.service.Disable(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DisableAuthResponse{
		AuthEnabled: false,
		Message:     "Authentication disabled",
	})
}
