package models

import "time"

type Project struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description *string          `gorm:"type:text" json:"description"`
	Color       *string          `gorm:"size:20" json:"color"`
	Status      string           `gorm:"size:20;not null;default:'active';index" json:"status"`
	Notes       *string          `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	BOMItems    []ProjectBOMItem `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
