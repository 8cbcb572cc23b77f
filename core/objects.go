package core

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URL lifetimes for presigned operations.
const (
	DownloadURLTTL = time.Hour
	UploadURLTTL   = 10 * time.Minute
)

// uploadKey derives an object key from the ingestion timestamp and the
// original filename so repeated uploads of the same file never collide.
func uploadKey(filename string) string {
	return time.Now().UTC().Format("20060102T150405") + "-" + sanitizeFilename(filename)
}

// presignKey adds a random component on top of the timestamp: presigned PUT
// URLs may be requested in bursts faster than the one-second clock tick.
func presignKey(filename string) string {
	return time.Now().UTC().Format("20060102T150405") + "-" + uuid.NewString() + "-" + sanitizeFilename(filename)
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// UploadObject stores a small file routed through the server and returns the
// derived key. Files over MaxUploadBytes are rejected; clients should use a
// presigned upload URL instead.
func (s *Service) UploadObject(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: file", ErrValidation)
	}
	if size > s.opts.MaxUploadBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, s.opts.MaxUploadBytes)
	}
	key := uploadKey(filename)
	if err := s.objects.Upload(ctx, key, contentType, body, size); err != nil {
		return "", err
	}
	return key, nil
}

// Objects lists every object in the bucket.
func (s *Service) Objects(ctx context.Context) ([]ObjectInfo, error) {
	return s.objects.List(ctx)
}

// DownloadURL returns a presigned GET URL valid for one hour.
func (s *Service) DownloadURL(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: key", ErrValidation)
	}
	return s.objects.PresignGet(ctx, key, DownloadURLTTL)
}

// PresignUpload returns a presigned PUT URL valid for ten minutes, letting
// large files go directly to the bucket without passing through the server.
func (s *Service) PresignUpload(ctx context.Context, filename string) (url, key string, err error) {
	if strings.TrimSpace(filename) == "" {
		return "", "", fmt.Errorf("%w: filename", ErrValidation)
	}
	key = presignKey(filename)
	url, err = s.objects.PresignPut(ctx, key, UploadURLTTL)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// DeleteObject removes an object by key.
func (s *Service) DeleteObject(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key", ErrValidation)
	}
	return s.objects.Delete(ctx, key)
}
