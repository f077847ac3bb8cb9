package handler

import (
	"errors"
	"strconv"

	"github.com/dermascan-backend/internal/service"
	"github.com/dermascan-backend/internal/storage"
	"github.com/dermascan-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// UploadFieldName is the multipart form field carrying the image file
const UploadFieldName = "image"

// UploadHandler handles image upload API requests
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles a single image upload
// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile(UploadFieldName)
	if err != nil {
		response.BadRequest(c, "No image file uploaded")
		return
	}

	// userId is optional and never existence-checked
	var userID *uint
	if v := c.PostForm("userId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			uid := uint(id)
			userID = &uid
		}
	}

	image, err := h.uploadService.Save(fh, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedType):
			response.UnsupportedMediaType(c, err.Error())
		case errors.Is(err, storage.ErrFileTooLarge):
			response.PayloadTooLarge(c, err.Error())
		default:
			response.InternalError(c, "Failed to save image")
		}
		return
	}

	response.OK(c, gin.H{
		"success":          true,
		"imageId":          image.ID,
		"filename":         image.Filename,
		"originalFilename": image.OriginalFilename,
		"filePath":         image.Path,
	})
}

// RegisterRoutes registers upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}
