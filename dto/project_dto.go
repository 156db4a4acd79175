package dto

import (
	"gin-bomtracker/models"

	"github.com/shopspring/decimal"
)

type CreateProjectInput struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,max=20"`
	Status      string  `json:"status" binding:"omitempty,projectstatus"`
	Notes       *string `json:"notes"`
}

type UpdateProjectInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,max=20"`
	Status      *string `json:"status" binding:"omitempty,projectstatus"`
	Notes       *string `json:"notes"`
}

type ProjectResponse struct {
	models.Project
	BOMTotal     int64 `json:"bom_total"`
	BOMCompleted int64 `json:"bom_completed"`
}

type ProjectDetailResponse struct {
	models.Project
	BOMSummary BOMSummaryResponse `json:"bom_summary"`
}

type CreateBOMItemInput struct {
	Name             string           `json:"name" binding:"required,max=255"`
	QuantityNeeded   *int             `json:"quantity_needed" binding:"omitempty,min=1"`
	QuantityAcquired *int             `json:"quantity_acquired" binding:"omitempty,min=0"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	SourcingURL      *string          `json:"sourcing_url" binding:"omitempty,url,max=512"`
	ArchiveID        *uint            `json:"archive_id"`
	STLFilename      *string          `json:"stl_filename" binding:"omitempty,max=255"`
	Remarks          *string          `json:"remarks"`
	SortOrder        *int             `json:"sort_order"`
}

// UpdateBOMItemInput leaves nil fields unchanged.
type UpdateBOMItemInput struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=255"`
	QuantityNeeded   *int             `json:"quantity_needed" binding:"omitempty,min=1"`
	QuantityAcquired *int             `json:"quantity_acquired" binding:"omitempty,min=0"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	SourcingURL      *string          `json:"sourcing_url" binding:"omitempty,url,max=512"`
	ArchiveID        *uint            `json:"archive_id"`
	STLFilename      *string          `json:"stl_filename" binding:"omitempty,max=255"`
	Remarks          *string          `json:"remarks"`
	SortOrder        *int             `json:"sort_order"`
}

type ReorderBOMInput struct {
	ItemIDs []uint `json:"item_ids" binding:"required"`
}

type BOMSummaryResponse struct {
	TotalItems            int             `json:"total_items"`
	CompletedItems        int             `json:"completed_items"`
	TotalQuantityNeeded   int             `json:"total_quantity_needed"`
	TotalQuantityAcquired int             `json:"total_quantity_acquired"`
	TotalCost             decimal.Decimal `json:"total_cost"`
	RemainingCost         decimal.Decimal `json:"remaining_cost"`
}
