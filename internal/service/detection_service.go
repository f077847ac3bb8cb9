package service

import (
	"github.com/dermascan-backend/internal/models"
	"github.com/dermascan-backend/internal/repository"
)

// DetectionService records externally-computed detection results and serves
// per-user history. No inference happens here; disease, accuracy and
// medicine are supplied by the caller.
type DetectionService struct {
	resultRepo *repository.DetectionResultRepository
}

// NewDetectionService creates a new DetectionService
func NewDetectionService(resultRepo *repository.DetectionResultRepository) *DetectionService {
	return &DetectionService{resultRepo: resultRepo}
}

// DetectionResultRequest represents the save-result request. Accuracy is a
// pointer so a confidence of 0 counts as present; only an absent field fails
// validation. ImageID and UserID are opaque, unchecked references.
type DetectionResultRequest struct {
	ImageID  *uint    `json:"imageId"`
	UserID   *uint    `json:"userId"`
	Disease  string   `json:"disease" binding:"required"`
	Accuracy *float64 `json:"accuracy" binding:"required"`
	Medicine string   `json:"medicine" binding:"required"`
}

// SaveResult inserts a detection result row
func (s *DetectionService) SaveResult(req *DetectionResultRequest) (*models.DetectionResult, error) {
	result := &models.DetectionResult{
		ImageID:  req.ImageID,
		UserID:   req.UserID,
		Disease:  req.Disease,
		Accuracy: *req.Accuracy,
		Medicine: req.Medicine,
	}

	if err := s.resultRepo.Create(result); err != nil {
		return nil, err
	}

	return result, nil
}

// History returns a user's detection results, newest first. An unknown user
// yields an empty list, not an error.
func (s *DetectionService) History(userID uint) ([]repository.HistoryEntry, error) {
	return s.resultRepo.ListByUser(userID)
}
