package models

import (
	"time"
)

// Image holds the metadata row for an uploaded file; the bytes themselves
// live on disk under the generated Filename.
type Image struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           *uint     `gorm:"index" json:"user_id"`
	Filename         string    `gorm:"uniqueIndex;size:255;not null" json:"filename"`
	OriginalFilename string    `gorm:"size:255" json:"original_filename"`
	Path             string    `gorm:"size:512;not null" json:"path"`
	UploadedAt       time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// TableName specifies the table name for Image model
func (Image) TableName() string {
	return "images"
}
