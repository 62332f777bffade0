// Package blob stores uploaded files (animal photos, report images, receipts,
// volunteer documents) and returns the public URLs persisted on entities.
package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrTooLarge is returned when an upload exceeds the configured size limit.
	ErrTooLarge = errors.New("blob: file too large")
	// ErrUnsupportedType is returned for content types outside the allow list.
	ErrUnsupportedType = errors.New("blob: unsupported content type")
	// ErrNotFound is returned when a key does not exist.
	ErrNotFound = errors.New("blob: not found")
)

// Object is a stored file.
type Object struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// Store is implemented by every blob backend.
type Store interface {
	// Put stores r under a fresh key below prefix and returns the stored object.
	Put(ctx context.Context, prefix string, r io.Reader) (Object, error)
	// Open returns the content of key for serving.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Kind selects which content types an upload accepts.
type Kind int

const (
	KindImage Kind = iota
	KindDocument
)

var extensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// Allowed reports whether contentType is accepted for uploads of kind k.
func (k Kind) Allowed(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		_, ok := extensions[contentType]
		return ok
	}
	return k == KindDocument && contentType == "application/pdf"
}

// sniff reads up to 512 bytes of r to detect its content type and returns a
// reader that replays them.
func sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	head = head[:n]
	ct := http.DetectContentType(head)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct, io.MultiReader(bytes.NewReader(head), r), nil
}
