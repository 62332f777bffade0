// Package dataloader provides per-request DataLoaders that batch the owner,
// reporter, organizer, donor, recipient and campaign summaries embedded in
// list responses into single SQL calls. Loaders call repositories directly;
// the data they return is already public.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type eventRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User  userRepo
	Event eventRepo
}

// Loaders contains the per-request DataLoaders. Created per request via
// NewLoaders.
type Loaders struct {
	UserByID  *dataloader.Loader[uuid.UUID, *domain.UserSummary]
	EventByID *dataloader.Loader[uuid.UUID, *domain.EventSummary]
}

// NewLoaders creates a new set of DataLoaders backed by the given
// repositories. Loaders cache results, so one set must not outlive a request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:  newLoader(newUsersBatchFn(repos.User)),
		EventByID: newLoader(newEventsBatchFn(repos.Event)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. It returns nil when the
// middleware is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Users resolves the summaries of ids through the request's loader. Missing
// users are absent from the result. Duplicate and nil ids are ignored.
func Users(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.UserSummary, error) {
	return loadMany(ctx, ids, func(l *Loaders) *dataloader.Loader[uuid.UUID, *domain.UserSummary] { return l.UserByID })
}

// Events resolves the summaries of ids through the request's loader.
func Events(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.EventSummary, error) {
	return loadMany(ctx, ids, func(l *Loaders) *dataloader.Loader[uuid.UUID, *domain.EventSummary] { return l.EventByID })
}

func loadMany[V any](
	ctx context.Context,
	ids []uuid.UUID,
	pick func(*Loaders) *dataloader.Loader[uuid.UUID, *V],
) (map[uuid.UUID]V, error) {
	out := make(map[uuid.UUID]V, len(ids))

	keys := unique(ids)
	if len(keys) == 0 {
		return out, nil
	}
	l := FromContext(ctx)
	if l == nil {
		return out, nil
	}

	values, errs := pick(l).LoadMany(ctx, keys)()
	for i, v := range values {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if v != nil {
			out[keys[i]] = *v
		}
	}
	return out, nil
}

func unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
