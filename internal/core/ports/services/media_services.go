package services

import "context"

// MediaUploader uploads a local file to object storage and returns its
// public URL. The caller owns the local file and is responsible for
// removing it whatever the outcome.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
