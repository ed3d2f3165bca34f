package assets

import (
	"context"
	"fmt"
	"sync"
)

// Store is the key/value backend of a Cache. Set must not overwrite an
// existing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Backend names accepted by OpenStore.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// StoreConfig selects and configures a Store.
type StoreConfig struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// OpenStore builds the store named by cfg.Backend. An empty backend means
// memory.
func OpenStore(ctx context.Context, cfg StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLiteStore(ctx, cfg.SQLitePath)
	case BackendRedis:
		return OpenRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// MemoryStore keeps entries in a map for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; !exists {
		s.entries[key] = value
	}
	return nil
}

// Len reports the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
