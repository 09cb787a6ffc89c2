// Package kvmemory is an in-process key-value store, used when nothing
// should outlive the process and in tests.
package kvmemory

import (
	"context"
	"sync"

	"github.com/gosom/google-maps-coordinates/history"
)

var _ history.KV = (*repo)(nil)

type repo struct {
	mu    *sync.RWMutex
	items map[string][]byte
}

func New() history.KV {
	ans := repo{
		mu:    &sync.RWMutex{},
		items: make(map[string][]byte),
	}

	return &ans
}

func (r *repo) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.items[key]
	if !ok {
		return nil, false, nil
	}

	ans := make([]byte, len(value))
	copy(ans, value)

	return ans, true, nil
}

func (r *repo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)

	r.items[key] = stored

	return nil
}

func (r *repo) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)

	return nil
}
