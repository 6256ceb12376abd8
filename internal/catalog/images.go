package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const dealImageBucket = "deals"

// ImageStore uploads deal photos to MinIO and hands back a public URL that
// goes into the product's image_urls list.
type ImageStore struct {
	client   *minio.Client
	endpoint string
	secure   bool
}

func NewImageStore(client *minio.Client, endpoint string, secure bool) *ImageStore {
	return &ImageStore{client: client, endpoint: endpoint, secure: secure}
}

func (s *ImageStore) Enabled() bool {
	return s != nil && s.client != nil
}

// Upload stores the file under a random name so repeated uploads of the same
// filename never overwrite each other.
func (s *ImageStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if !s.Enabled() {
		return "", errors.New("catalog: image storage is not configured")
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	objectName := uuid.NewString() + path.Ext(file.Filename)
	_, err = s.client.PutObject(ctx, dealImageBucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, dealImageBucket, objectName), nil
}
