package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// BlobStorage is the contract for the external store holding uploaded media
// bytes. The service only depends on "put bytes, get back a durable URL".
type BlobStorage interface {
	// Upload stores the bytes from r under a collision-resistant key derived
	// from the original filename and returns the public fetch URL.
	Upload(ctx context.Context, r io.Reader, fileName string) (string, error)
}

type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage creates a Cloudinary-backed BlobStorage. It expects
// CLOUDINARY_URL (or the individual CLOUDINARY_* variables) in the
// environment, per the Cloudinary Go SDK.
func NewCloudinaryStorage(folder string) (BlobStorage, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	// Serve HTTPS URLs only
	cld.Config.URL.Secure = true

	return &cloudinaryStorage{cld: cld, folder: folder}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, r io.Reader, fileName string) (string, error) {
	if s == nil || s.cld == nil {
		return "", fmt.Errorf("blob storage is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := s.cld.Upload.Upload(ctx, r, uploadParams(s.folder, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}

	if resp.SecureURL == "" {
		return "", fmt.Errorf("blob upload succeeded but secure URL is empty")
	}

	return resp.SecureURL, nil
}

// uploadParams builds the Cloudinary parameters for one upload. The key is
// timestamp plus a random component so two uploads of the same filename
// never collide.
func uploadParams(folder, fileName string) uploader.UploadParams {
	publicID := fmt.Sprintf("%d-%s-%s", time.Now().UnixNano(), uuid.NewString(), fileName)

	return uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
		// The SDK targets the image endpoint when no resource type is set,
		// and that endpoint rejects video payloads.
		ResourceType:   "video",
		UseFilename:    api.Bool(false),
		UniqueFilename: api.Bool(false),
		Overwrite:      api.Bool(false),
	}
}
