// Package upload stores request attachments in a blob store on behalf of
// the resource services.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/blob"
	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// Store is the subset of blob.Store used for attachments.
type Store interface {
	Put(ctx context.Context, prefix string, r io.Reader) (blob.Object, error)
	Delete(ctx context.Context, key string) error
}

// Batch is a set of stored objects that can be rolled back.
type Batch struct {
	store   Store
	objects []blob.Object
}

// URLs returns the public URLs of the stored objects in upload order.
func (b *Batch) URLs() []string {
	urls := make([]string, len(b.objects))
	for i, o := range b.objects {
		urls[i] = o.URL
	}
	return urls
}

// Discard removes every stored object. Errors are ignored; orphaned files
// are harmless.
func (b *Batch) Discard(ctx context.Context) {
	for _, o := range b.objects {
		_ = b.store.Delete(ctx, o.Key)
	}
	b.objects = nil
}

// Files stores files under prefix. At least one and at most max files are
// accepted. Rejected content is reported as a validation error on field and
// any files already stored are removed.
func Files(ctx context.Context, store Store, prefix, field string, files []io.Reader, max int) (*Batch, error) {
	if len(files) == 0 {
		return nil, domain.NewValidationError(field, "at least one file is required")
	}
	if max > 0 && len(files) > max {
		return nil, domain.NewValidationError(field, fmt.Sprintf("at most %d files are allowed", max))
	}

	b := &Batch{store: store}
	for _, f := range files {
		obj, err := store.Put(ctx, prefix, f)
		if err != nil {
			b.Discard(ctx)
			return nil, Rejection(field, err)
		}
		b.objects = append(b.objects, obj)
	}
	return b, nil
}

// Rejection converts blob content errors into a validation error on field.
// Other errors are wrapped unchanged.
func Rejection(field string, err error) error {
	switch {
	case errors.Is(err, blob.ErrTooLarge):
		return domain.NewValidationError(field, "file is too large")
	case errors.Is(err, blob.ErrUnsupportedType):
		return domain.NewValidationError(field, "unsupported file type")
	default:
		return fmt.Errorf("store upload: %w", err)
	}
}
