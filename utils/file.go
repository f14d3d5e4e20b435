package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"thorned-magnolia/config"
)

var (
	ErrFileTooLarge    = errors.New("file size too large")
	ErrInvalidFileType = errors.New("only image files are allowed")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// SaveUpload validates and stores an uploaded design asset under a
// date-partitioned directory (subDir/YYYY/MM/DD) with a generated filename.
// Returns the path relative to the upload root, which is what gets stored
// on order documents.
func SaveUpload(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", ErrFileTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageTypes[contentType] || !allowedImageExtensions[ext] {
		return "", ErrInvalidFileType
	}

	today := time.Now().UTC()
	datePath := filepath.Join(subDir,
		fmt.Sprintf("%d", today.Year()),
		fmt.Sprintf("%02d", int(today.Month())),
		fmt.Sprintf("%02d", today.Day()))

	uploadPath := filepath.Join(config.AppConfig.UploadDir, datePath)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadPath, filename)); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filepath.Join(datePath, filename), nil
}
