package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freshmart-backend/services"
)

// UploadController accepts multipart image uploads and stores them with the
// configured driver.
type UploadController struct {
	uploader services.Uploader
}

func NewUploadController(uploader services.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadImages stores every file in the "files" form field and returns the
// resulting URLs in order.
func (uc *UploadController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
			return
		}
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := uc.uploader.Upload(c.Request.Context(), file)
		if err != nil {
			zap.L().Error("Image upload failed",
				zap.Error(err),
				zap.String("filename", file.Filename),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		urls = append(urls, url)
	}

	zap.L().Info("Images uploaded", zap.Int("count", len(urls)))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"urls":    urls,
	})
}
