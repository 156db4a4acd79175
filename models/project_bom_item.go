package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// ProjectBOMItem is a sourced or purchased part (hardware, electronics,
// screws) that has to be acquired for a project.
//
// Deleting the project deletes its items. Deleting the referenced archive
// only clears ArchiveID.
type ProjectBOMItem struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	ProjectID        uint                `gorm:"not null;index" json:"project_id"`
	Name             string              `gorm:"size:255;not null" json:"name"`
	QuantityNeeded   int                 `gorm:"not null;default:1" json:"quantity_needed"`
	QuantityAcquired int                 `gorm:"not null;default:0" json:"quantity_acquired"`
	UnitPrice        decimal.NullDecimal `gorm:"type:numeric(12,4)" json:"unit_price"`
	SourcingURL      *string             `gorm:"size:512" json:"sourcing_url"`
	ArchiveID        *uint               `gorm:"index" json:"archive_id"`
	Archive          *PrintArchive       `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	STLFilename      *string             `gorm:"column:stl_filename;size:255" json:"stl_filename"`
	Remarks          *string             `gorm:"type:text" json:"remarks"`
	SortOrder        int                 `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func (ProjectBOMItem) TableName() string {
	return "project_bom_items"
}

// IsComplete reports whether enough units have been acquired.
func (i ProjectBOMItem) IsComplete() bool {
	return i.QuantityAcquired >= i.QuantityNeeded
}
