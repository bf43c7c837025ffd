package session

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	client *redis.Client
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Data, error) {
	raw, err := s.client.Get(ctx, sessionKey(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}

	return &data, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, data *Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(key), raw, TTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, sessionKey(key)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func sessionKey(key string) string {
	return "session:" + key
}
