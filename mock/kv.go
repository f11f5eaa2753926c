package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.KVStore = (*KVStore)(nil)

// KVStore is a mock implementation of docsearch.KVStore.
type KVStore struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, values map[string]string) error
	RemoveFn func(ctx context.Context, keys ...string) error
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *KVStore) Set(ctx context.Context, values map[string]string) error {
	return s.SetFn(ctx, values)
}

func (s *KVStore) Remove(ctx context.Context, keys ...string) error {
	return s.RemoveFn(ctx, keys...)
}
