package usecase

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/orientwatch/backend/internal/domain"
)

// MaxUploadSize caps image uploads at 5 MiB.
const MaxUploadSize = 5 << 20

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
}

type UploadUC struct {
	Storage domain.FileStorage
}

// Store validates extension and size, then hands the bytes to the blob
// store under an opaque filename. Bytes are never sniffed beyond length.
func (uc *UploadUC) Store(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: file type %q not allowed", domain.ErrInvalidInput, ext)
	}
	if len(data) > MaxUploadSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrTooLarge, MaxUploadSize)
	}

	stored := uuid.New().String() + ext
	url, err := uc.Storage.SaveImage(ctx, stored, data)
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		URL:      url,
		Filename: stored,
		Size:     len(data),
		MimeType: mime.TypeByExtension(ext),
	}, nil
}
