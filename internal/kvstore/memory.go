// memory.go
package kvstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore es la implementación en memoria del puerto, usada en tests y
// como fallback cuando no hay Redis configurado.
type MemoryStore struct {
	mu      sync.RWMutex
	data    map[string]string
	expires map[string]time.Time

	subMu sync.Mutex
	subs  map[int]func(string)
	next  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:    map[string]string{},
		expires: map[string]time.Time{},
		subs:    map[int]func(string){},
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	v, ok := m.data[key]
	exp, hasExp := m.expires[key]
	m.mu.RUnlock()

	if !ok {
		return "", ErrNoValue
	}
	if hasExp && time.Now().After(exp) {
		m.mu.Lock()
		delete(m.data, key)
		delete(m.expires, key)
		m.mu.Unlock()
		return "", ErrNoValue
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	delete(m.expires, key)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemoryStore) SetTTL(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	m.data[key] = value
	m.expires[key] = time.Now().Add(ttl)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	delete(m.expires, key)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemoryStore) Subscribe(fn func(string)) func() {
	m.subMu.Lock()
	id := m.next
	m.next++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *MemoryStore) notify(key string) {
	m.subMu.Lock()
	fns := make([]func(string), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}
