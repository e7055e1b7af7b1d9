package services

import (
	"context"
	"mime/multipart"
)

// Uploader stores an uploaded image and returns its public URL. The rest of
// the system treats image storage as a single external collaborator; which
// backend serves it is a deployment choice.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}
