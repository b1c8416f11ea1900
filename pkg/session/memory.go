package session

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v2"
)

// MemoryStore keeps sessions in an in-process TTL cache. Fine for a
// single node, useless behind a load balancer - use RedisStore there.
type MemoryStore struct {
	cache *ttlcache.Cache
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	cache := ttlcache.NewCache()
	cache.SetTTL(ttl)
	cache.SkipTTLExtensionOnHit(true)

	return &MemoryStore{
		cache: cache,
		ttl:   ttl,
	}
}

func (m *MemoryStore) Create(_ context.Context, data Data) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	if err := m.cache.SetWithTTL(id, data, m.ttl); err != nil {
		return "", err
	}

	return id, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (Data, error) {
	v, err := m.cache.Get(id)
	if err != nil {
		if err == ttlcache.ErrNotFound {
			return Data{}, ErrNotFound
		}

		return Data{}, err
	}

	data, ok := v.(Data)
	if !ok {
		return Data{}, ErrNotFound
	}

	return data, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	err := m.cache.Remove(id)
	if err != nil && err != ttlcache.ErrNotFound {
		return err
	}

	return nil
}
