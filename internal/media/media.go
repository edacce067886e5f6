// Package media relocates uploaded image bytes to an external object host
// and hands back durable public URLs.
package media

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Folders for the two upload paths.
const (
	BlogFolder   = "blog-platform/blogs"
	AvatarFolder = "blog-platform/avatars"
)

// UploadInput describes one image to relocate.
type UploadInput struct {
	Folder      string
	Filename    string
	ContentType string
	Content     []byte
}

// Uploader relocates raw image bytes and returns a durable URL. The call is a
// synchronous round trip: no retry, no idempotency key, failure surfaces to
// the caller.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}

// objectKey builds a unique object key under the folder, preserving the
// original file extension.
func objectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.New().String() + ext
	if folder == "" {
		return key
	}
	return strings.TrimSuffix(folder, "/") + "/" + key
}
