package service

import (
	"mime/multipart"

	"github.com/dermascan-backend/internal/models"
	"github.com/dermascan-backend/internal/repository"
	"github.com/dermascan-backend/internal/storage"
)

// UploadService stores uploaded image blobs and their metadata rows
type UploadService struct {
	imageRepo *repository.ImageRepository
	store     *storage.LocalStore
}

// NewUploadService creates a new UploadService
func NewUploadService(imageRepo *repository.ImageRepository, store *storage.LocalStore) *UploadService {
	return &UploadService{
		imageRepo: imageRepo,
		store:     store,
	}
}

// Save persists the uploaded file on disk and records its metadata. The
// userID is optional and never existence-checked; anonymous uploads are
// allowed. Blob-store validation errors (storage.ErrUnsupportedType,
// storage.ErrFileTooLarge) pass through unchanged.
func (s *UploadService) Save(fh *multipart.FileHeader, userID *uint) (*models.Image, error) {
	filename, path, err := s.store.Save(fh)
	if err != nil {
		return nil, err
	}

	image := &models.Image{
		UserID:           userID,
		Filename:         filename,
		OriginalFilename: fh.Filename,
		Path:             path,
	}

	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}

	return image, nil
}
