package handler

import (
	"strconv"

	"github.com/dermascan-backend/internal/repository"
	"github.com/dermascan-backend/internal/service"
	"github.com/dermascan-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// DetectionHandler handles detection result API requests
type DetectionHandler struct {
	detectionService *service.DetectionService
}

// NewDetectionHandler creates a new DetectionHandler
func NewDetectionHandler(detectionService *service.DetectionService) *DetectionHandler {
	return &DetectionHandler{detectionService: detectionService}
}

// SaveResult records a detection result supplied by the client
// POST /api/detection-result
func (h *DetectionHandler) SaveResult(c *gin.Context) {
	var req service.DetectionResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "disease, accuracy and medicine are required")
		return
	}

	result, err := h.detectionService.SaveResult(&req)
	if err != nil {
		response.InternalError(c, "Failed to save detection result")
		return
	}

	response.OK(c, gin.H{
		"success":  true,
		"resultId": result.ID,
		"disease":  result.Disease,
		"accuracy": result.Accuracy,
		"medicine": result.Medicine,
	})
}

// History returns a user's detection results, newest first
// GET /api/history/:userId
func (h *DetectionHandler) History(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	entries, err := h.detectionService.History(uint(userID))
	if err != nil {
		response.InternalError(c, "Failed to load history")
		return
	}

	// Empty history is a success, not an error
	if entries == nil {
		entries = []repository.HistoryEntry{}
	}

	response.OK(c, gin.H{
		"success": true,
		"history": entries,
	})
}

// RegisterRoutes registers detection result routes
func (h *DetectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/detection-result", h.SaveResult)
	rg.GET("/history/:userId", h.History)
}
