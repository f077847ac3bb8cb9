package repository

import (
	"github.com/dermascan-backend/internal/models"
	"gorm.io/gorm"
)

// ImageRepository handles image metadata access
type ImageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create inserts a new image metadata row
func (r *ImageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}
