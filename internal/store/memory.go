package store

import (
	"context"
	"sort"
	"sync"
)

// MemStore implements Store in memory. It is intended for tests and
// throwaway sessions.
type MemStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	closed bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

func (m *MemStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	return memView{base: m.data}.Get(ctx, key)
}

func (m *MemStore) Set(ctx context.Context, key string, value []byte) error {
	return m.Update(ctx, func(kv KV) error { return kv.Set(ctx, key, value) })
}

func (m *MemStore) Append(ctx context.Context, key string, elem []byte) error {
	return m.Update(ctx, func(kv KV) error { return kv.Append(ctx, key, elem) })
}

func (m *MemStore) Keys(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	return memView{base: m.data}.Keys(ctx)
}

func (m *MemStore) Update(ctx context.Context, fn func(kv KV) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	view := &memView{base: m.data, pending: map[string][]byte{}}
	if err := fn(view); err != nil {
		return err
	}
	for k, v := range view.pending {
		m.data[k] = v
	}
	return nil
}

func (m *MemStore) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data = map[string][]byte{}
	return nil
}

func (m *MemStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// memView reads through pending writes to the committed map.
type memView struct {
	base    map[string][]byte
	pending map[string][]byte
}

func (v memView) Get(_ context.Context, key string) ([]byte, bool, error) {
	if b, ok := v.pending[key]; ok {
		return clone(b), true, nil
	}
	b, ok := v.base[key]
	return clone(b), ok, nil
}

func (v memView) Set(_ context.Context, key string, value []byte) error {
	v.pending[key] = clone(value)
	return nil
}

func (v memView) Append(ctx context.Context, key string, elem []byte) error {
	current, _, _ := v.Get(ctx, key)
	next, err := appendRaw(current, elem)
	if err != nil {
		return err
	}
	return v.Set(ctx, key, next)
}

func (v memView) Keys(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var keys []string
	for k := range v.base {
		seen[k] = true
		keys = append(keys, k)
	}
	for k := range v.pending {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
