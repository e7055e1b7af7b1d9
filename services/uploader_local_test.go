package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeaderFor(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["files"][0]
}

func TestLocalUploaderWritesFile(t *testing.T) {
	dir := t.TempDir()
	uploader, err := NewLocalUploader(dir)
	assert.NoError(t, err)

	url, err := uploader.Upload(context.Background(), fileHeaderFor(t, "mango.jpg", "fake bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.Equal(t, ".jpg", filepath.Ext(url))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	assert.NoError(t, err)
	assert.Equal(t, "fake bytes", string(data))
}

func TestLocalUploaderCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalUploader(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
