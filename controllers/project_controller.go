package controllers

import (
	"gin-bomtracker/dto"
	"gin-bomtracker/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IProjectController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ProjectController struct {
	service services.IProjectService
}

func NewProjectController(service services.IProjectService) IProjectController {
	return &ProjectController{service: service}
}

func (c *ProjectController) FindAll(ctx *gin.Context) {
	projects, err := c.service.FindAll(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

func (c *ProjectController) FindByID(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	project, err := c.service.FindByID(ctx.Request.Context(), projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

func (c *ProjectController) Create(ctx *gin.Context) {
	var input dto.CreateProjectInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	newProject, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newProject)
}

func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.UpdateProjectInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	updatedProject, err := c.service.Update(ctx.Request.Context(), projectID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedProject)
}

func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), projectID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
