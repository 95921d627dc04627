package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// MemoryStore keeps cooldown keys in a process-local ristretto cache
type MemoryStore struct {
	client *ristretto.Cache
}

// NewMemoryStore creates a store able to hold roughly maxKeys entries
func NewMemoryStore(maxKeys int64, logger *logrus.Logger) (*MemoryStore, error) {
	if maxKeys <= 0 {
		maxKeys = 100000
	}

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxKeys * 10, // Keys tracked for admission frequency
		MaxCost:            maxKeys,      // Every entry costs 1
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cooldown cache: %w", err)
	}

	if logger != nil {
		logger.WithField("max_keys", maxKeys).Info("In-memory cooldown store initialized")
	}
	return &MemoryStore{client: client}, nil
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.client.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

// Set stores the value and waits for the write buffer so the key is visible
// to the next Get.
func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if !m.client.SetWithTTL(key, value, 1, ttl) {
		return fmt.Errorf("cooldown cache dropped key %s", key)
	}
	m.client.Wait()
	return nil
}

// Close releases the cache
func (m *MemoryStore) Close() {
	m.client.Close()
}
