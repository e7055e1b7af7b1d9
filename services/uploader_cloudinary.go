package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
)

// CloudinaryUploader uploads images to Cloudinary. The account is configured
// through the CLOUDINARY_URL environment variable.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("cloudinary init error: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	resp, err := u.cld.Upload.Upload(ctx, f, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_img_%d", time.Now().UnixNano()),
		Folder:   u.folder,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned an empty upload response")
	}
	return resp.SecureURL, nil
}
