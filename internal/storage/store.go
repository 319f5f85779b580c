// Package storage holds the object store contract and its backends.
//
// Objects are addressed by (bucket, key). Public URLs are always built as
// <base>/<bucket>/<key>, which lets KeyFromURL recover the key on delete.
package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrObjectNotFound is returned by Get when the object does not exist.
var ErrObjectNotFound = errors.New("storage: object not found")

// ObjectStore is the subset of object storage the application needs.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
	PublicURL(bucket, key string) string
}

// JoinURL builds the public URL of an object under base.
func JoinURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL extracts the object key from a public URL produced for bucket.
// ok is false when the URL does not reference the bucket.
func KeyFromURL(bucket, url string) (key string, ok bool) {
	marker := "/" + bucket + "/"
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return "", false
	}
	key = url[idx+len(marker):]
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", false
	}
	return key, true
}

// ExtensionFor maps an image MIME type to the file extension used in keys.
func ExtensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	case "image/heif":
		return "heif"
	case "image/gif":
		return "gif"
	default:
		return "bin"
	}
}
