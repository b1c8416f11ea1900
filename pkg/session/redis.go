package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "session:"

// RedisStore keeps sessions in redis so multiple API instances can
// share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisStore) Create(ctx context.Context, data Data) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	if err := r.client.Set(ctx, redisPrefix+id, b, r.ttl).Err(); err != nil {
		return "", err
	}

	return id, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (Data, error) {
	b, err := r.client.Get(ctx, redisPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Data{}, ErrNotFound
		}

		return Data{}, err
	}

	var data Data
	if err := json.Unmarshal(b, &data); err != nil {
		return Data{}, err
	}

	return data, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, redisPrefix+id).Err()
}
