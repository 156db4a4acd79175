package controllers

import (
	"gin-bomtracker/constants"
	"gin-bomtracker/dto"
	"gin-bomtracker/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type IArchiveController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ArchiveController struct {
	service services.IArchiveService
}

func NewArchiveController(service services.IArchiveService) IArchiveController {
	return &ArchiveController{service: service}
}

func (c *ArchiveController) FindAll(ctx *gin.Context) {
	var projectID *uint
	if raw := ctx.Query("project_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidID})
			return
		}
		pid := uint(id)
		projectID = &pid
	}

	archives, err := c.service.FindAll(ctx.Request.Context(), projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, archives)
}

func (c *ArchiveController) FindByID(ctx *gin.Context) {
	archiveID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	archive, err := c.service.FindByID(ctx.Request.Context(), archiveID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, archive)
}

func (c *ArchiveController) Create(ctx *gin.Context) {
	var input dto.CreateArchiveInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	archive, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, archive)
}

func (c *ArchiveController) Delete(ctx *gin.Context) {
	archiveID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), archiveID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
