package sentlog

import (
	"context"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

// RedisStore keeps the sent set in Redis so the record survives restarts
// and is shared between portal instances.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore constructs a RedisStore recording under the given key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Sent(ctx context.Context) (map[string]bool, error) {
	ids, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read sent log")
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *RedisStore) MarkSent(ctx context.Context, id string) error {
	if err := s.client.SAdd(ctx, s.key, id).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record sent task")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear sent log")
	}
	return nil
}
