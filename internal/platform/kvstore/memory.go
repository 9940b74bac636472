package kvstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps values in a map. It also counts writes per key so tests
// can assert on what reached the store.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	failures map[string]error
	Writes   map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}, failures: map[string]error{}, Writes: map[string]int{}}
}

// Fail makes every later Set or Delete of key return err. A nil err clears it.
func (m *MemoryStore) Fail(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, key)
		return
	}
	m.failures[key] = err
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failures[key]; err != nil {
		return err
	}
	m.values[key] = value
	m.Writes[key]++
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failures[key]; err != nil {
		return err
	}
	delete(m.values, key)
	return nil
}

// Within restores every value when fn fails. Writes made by other callers
// while fn runs are rolled back as well.
func (m *MemoryStore) Within(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	saved := make(map[string]string, len(m.values))
	for k, v := range m.values {
		saved[k] = v
	}
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.values = saved
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MemoryStore) Keys(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
