package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/dermascan-backend/internal/handler"
	"github.com/dermascan-backend/internal/models"
	"github.com/dermascan-backend/internal/repository"
	"github.com/dermascan-backend/internal/service"
	"github.com/dermascan-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens an isolated in-memory database and creates the schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Image{},
		&models.DetectionResult{},
	))

	return db
}

// newTestRouter wires the full /api surface over the given database, with
// uploads stored under a per-test temp directory
func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	blobStore, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	imageRepo := repository.NewImageRepository(db)
	resultRepo := repository.NewDetectionResultRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo))
	uploadHandler := handler.NewUploadHandler(service.NewUploadService(imageRepo, blobStore))
	detectionHandler := handler.NewDetectionHandler(service.NewDetectionService(resultRepo))

	router := gin.New()
	api := router.Group("/api")
	authHandler.RegisterRoutes(api)
	uploadHandler.RegisterRoutes(api)
	detectionHandler.RegisterRoutes(api)

	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartUpload builds a multipart request with one file part under the
// upload field name, carrying the given declared content type
func multipartUpload(t *testing.T, filename, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, handler.UploadFieldName, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
