package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxUploadSize is the upload size cap (10 MiB)
	MaxUploadSize = 10 << 20

	randSuffixMax = 1_000_000_000
)

var (
	ErrUnsupportedType = errors.New("only image files are allowed (jpeg, jpg, png, gif, bmp)")
	ErrFileTooLarge    = errors.New("file exceeds the 10 MB upload limit")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
}

// LocalStore persists uploaded blobs in a local directory. The database keeps
// only the generated filename and path; the bytes live here.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the uploads directory if absent and returns a store
// rooted at it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the uploads directory path
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save validates and persists one uploaded file, returning the generated
// filename and the path it was written to. Validation failures
// (ErrUnsupportedType, ErrFileTooLarge) happen before any write.
func (s *LocalStore) Save(fh *multipart.FileHeader) (filename, path string, err error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", "", ErrUnsupportedType
	}
	if !allowedMimeTypes[strings.ToLower(fh.Header.Get("Content-Type"))] {
		return "", "", ErrUnsupportedType
	}
	if fh.Size > MaxUploadSize {
		return "", "", ErrFileTooLarge
	}

	filename, err = generateFilename(ext)
	if err != nil {
		return "", "", err
	}
	path = filepath.Join(s.dir, filename)

	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", err
	}

	return filename, path, nil
}

// generateFilename builds a collision-resistant name from the current time
// in milliseconds and a random integer, keeping the original extension.
// Collisions are possible but treated as negligible; there is no retry.
func generateFilename(ext string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(randSuffixMax))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), n.Int64(), ext), nil
}
