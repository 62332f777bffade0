package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.UserSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.UserSummary] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.UserSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.UserSummary, len(users))
		for _, u := range users {
			s := u.Summary()
			byID[u.ID] = &s
		}
		return mapResults(keys, byID, nilValue[domain.UserSummary])
	}
}

func newEventsBatchFn(repo eventRepo) dataloader.BatchFunc[uuid.UUID, *domain.EventSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.EventSummary] {
		events, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.EventSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.EventSummary, len(events))
		for _, e := range events {
			s := e.Summary()
			byID[e.ID] = &s
		}
		return mapResults(keys, byID, nilValue[domain.EventSummary])
	}
}

// errorResults creates n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() *T { return nil }
