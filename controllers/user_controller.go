package controllers

import (
	"gin-bomtracker/constants"
	"gin-bomtracker/dto"
	"gin-bomtracker/middlewares"
	"gin-bomtracker/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) FindByID(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	user, err := c.service.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	newUser, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newUser)
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}
	currentUser, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return
	}

	updatedUser, err := c.service.Update(ctx.Request.Context(), userID, currentUser.ID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedUser)
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	currentUser, exists := middlewares.CurrentUser(ctx)
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), userID, currentUser.ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
