package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorned-magnolia/config"
)

func newUploadContext(t *testing.T, filename, contentType string, size int) (*gin.Context, *multipart.FileHeader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	fileHeader, err := c.FormFile("file")
	require.NoError(t, err)
	return c, fileHeader
}

func withUploadConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := config.AppConfig
	config.AppConfig = &config.Config{UploadDir: dir, MaxUploadSize: 10 << 20}
	t.Cleanup(func() { config.AppConfig = old })
	return dir
}

func TestSaveUpload(t *testing.T) {
	dir := withUploadConfig(t)
	c, fileHeader := newUploadContext(t, "design.png", "image/png", 128)

	relPath, err := SaveUpload(c, fileHeader, "custom-orders")
	require.NoError(t, err)

	today := time.Now().UTC()
	wantPrefix := filepath.Join("custom-orders",
		today.Format("2006"), today.Format("01"), today.Format("02"))
	assert.True(t, filepath.Dir(relPath) == wantPrefix, "got %s", relPath)
	assert.Equal(t, ".png", filepath.Ext(relPath))

	saved, err := os.ReadFile(filepath.Join(dir, relPath))
	require.NoError(t, err)
	assert.Len(t, saved, 128)
}

func TestSaveUploadRejectsOversizedFile(t *testing.T) {
	withUploadConfig(t)
	config.AppConfig.MaxUploadSize = 64
	c, fileHeader := newUploadContext(t, "design.png", "image/png", 128)

	_, err := SaveUpload(c, fileHeader, "custom-orders")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveUploadRejectsNonImageType(t *testing.T) {
	withUploadConfig(t)
	c, fileHeader := newUploadContext(t, "design.pdf", "application/pdf", 128)

	_, err := SaveUpload(c, fileHeader, "custom-orders")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestSaveUploadRejectsMismatchedExtension(t *testing.T) {
	withUploadConfig(t)
	c, fileHeader := newUploadContext(t, "design.exe", "image/png", 128)

	_, err := SaveUpload(c, fileHeader, "custom-orders")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}
