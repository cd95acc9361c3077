package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUploaderDisabled is returned by the no-op uploader used when object
// storage is not configured.
var ErrUploaderDisabled = errors.New("file storage is not configured")

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

type disabledUploader struct{}

// NewDisabledUploader returns an uploader that rejects every write.
func NewDisabledUploader() FileUploader {
	return disabledUploader{}
}

func (disabledUploader) Upload(context.Context, string, string, io.Reader) (*UploadResult, error) {
	return nil, ErrUploaderDisabled
}

func (disabledUploader) Delete(context.Context, string) error {
	return ErrUploaderDisabled
}

func (disabledUploader) GetPublicURL(string) string {
	return ""
}
