package controllers

import (
	"gin-bomtracker/dto"
	"gin-bomtracker/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IBOMController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Reorder(ctx *gin.Context)
	Summary(ctx *gin.Context)
}

type BOMController struct {
	service services.IBOMService
}

func NewBOMController(service services.IBOMService) IBOMController {
	return &BOMController{service: service}
}

func (c *BOMController) FindAll(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	items, err := c.service.FindAll(ctx.Request.Context(), projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *BOMController) Create(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.CreateBOMItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	newItem, err := c.service.Create(ctx.Request.Context(), projectID, input)
	if err != nil {
		respondArchiveReferenceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newItem)
}

func (c *BOMController) Update(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(ctx, "item_id")
	if !ok {
		return
	}
	var input dto.UpdateBOMItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	updatedItem, err := c.service.Update(ctx.Request.Context(), projectID, itemID, input)
	if err != nil {
		respondArchiveReferenceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedItem)
}

func (c *BOMController) Delete(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(ctx, "item_id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), projectID, itemID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *BOMController) Reorder(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var input dto.ReorderBOMInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err)
		return
	}

	items, err := c.service.Reorder(ctx.Request.Context(), projectID, input.ItemIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *BOMController) Summary(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.service.Summary(ctx.Request.Context(), projectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
