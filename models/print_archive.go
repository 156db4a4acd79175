package models

import "time"

// PrintArchive is the stored record of a finished print job.
type PrintArchive struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	PrintName *string   `gorm:"size:255" json:"print_name"`
	ProjectID *uint     `gorm:"index" json:"project_id"`
	Project   *Project  `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	Status    string    `gorm:"size:20;not null;default:'completed'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
