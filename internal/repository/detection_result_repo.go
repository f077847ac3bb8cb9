package repository

import (
	"time"

	"github.com/dermascan-backend/internal/models"
	"gorm.io/gorm"
)

// HistoryEntry is one row of a user's detection history: the result fields
// joined with the original filename and upload time of the referenced image.
// The image columns are pointers because the join is a left outer join —
// results with an absent or dangling image reference still appear.
type HistoryEntry struct {
	ID               uint       `json:"id"`
	ImageID          *uint      `json:"image_id"`
	UserID           *uint      `json:"user_id"`
	Disease          string     `json:"disease"`
	Accuracy         float64    `json:"accuracy"`
	Medicine         string     `json:"medicine"`
	DetectedAt       time.Time  `json:"detected_at"`
	OriginalFilename *string    `json:"original_filename"`
	UploadedAt       *time.Time `json:"uploaded_at"`
}

// DetectionResultRepository handles detection result data access
type DetectionResultRepository struct {
	db *gorm.DB
}

// NewDetectionResultRepository creates a new DetectionResultRepository
func NewDetectionResultRepository(db *gorm.DB) *DetectionResultRepository {
	return &DetectionResultRepository{db: db}
}

// Create inserts a new detection result
func (r *DetectionResultRepository) Create(result *models.DetectionResult) error {
	return r.db.Create(result).Error
}

// ListByUser retrieves a user's detection results, newest first
func (r *DetectionResultRepository) ListByUser(userID uint) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	err := r.db.Table("detection_results").
		Select("detection_results.id, detection_results.image_id, detection_results.user_id, "+
			"detection_results.disease, detection_results.accuracy, detection_results.medicine, "+
			"detection_results.detected_at, images.original_filename, images.uploaded_at").
		Joins("LEFT JOIN images ON images.id = detection_results.image_id").
		Where("detection_results.user_id = ?", userID).
		Order("detection_results.detected_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
