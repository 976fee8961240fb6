package store

import (
	"context"
	"sync"

	"github.com/viant/tradingpost/schema"
)

// Store is a pluggable persistence layer for the credential document.
type Store interface {
	// Load returns the current document; it fails with *schema.ConfigError when the document is unusable.
	Load(ctx context.Context) (*schema.Document, error)
	// Save fully replaces the persisted document; it fails with *schema.PersistenceError.
	Save(ctx context.Context, document *schema.Document) error
}

type MemoryStoreOption func(*memoryStore)

// WithSaveError makes every Save fail with err
func WithSaveError(err error) MemoryStoreOption {
	return func(m *memoryStore) {
		m.saveErr = err
	}
}

type memoryStore struct {
	mu       sync.RWMutex
	document *schema.Document
	saveErr  error
	saves    int
}

func (m *memoryStore) Load(_ context.Context) (*schema.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.document.Validate(); err != nil {
		return nil, schema.NewConfigError("", "invalid credentials", err)
	}
	return m.document.Clone(), nil
}

func (m *memoryStore) Save(_ context.Context, document *schema.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return schema.NewPersistenceError("memory", m.saveErr)
	}
	m.document = document.Clone()
	return nil
}

// Saves returns number of Save calls made against a memory store, or -1 for other stores
func Saves(s Store) int {
	m, ok := s.(*memoryStore)
	if !ok {
		return -1
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// NewMemoryStore creates a Store holding document in memory
func NewMemoryStore(document *schema.Document, options ...MemoryStoreOption) Store {
	ret := &memoryStore{}
	if document != nil {
		ret.document = document.Clone()
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
