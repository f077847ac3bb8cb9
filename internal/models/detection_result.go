package models

import (
	"time"
)

// DetectionResult records a disease label, confidence score and medicine
// recommendation supplied by the client after an external detection step.
// ImageID and UserID are independently nullable: a result may be anonymous,
// unlinked to a stored image, or both.
type DetectionResult struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ImageID    *uint     `gorm:"index" json:"image_id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	Disease    string    `gorm:"size:255;not null" json:"disease"`
	Accuracy   float64   `gorm:"not null" json:"accuracy"`
	Medicine   string    `gorm:"size:255;not null" json:"medicine"`
	DetectedAt time.Time `gorm:"autoCreateTime" json:"detected_at"`
}

// TableName specifies the table name for DetectionResult model
func (DetectionResult) TableName() string {
	return "detection_results"
}
