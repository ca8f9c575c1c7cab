package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

const snapshotTTL = 10 * time.Minute

// RedisSnapshotStore keeps computed progress snapshots in redis so the
// stats endpoint does not recompute on every request. Entries expire on
// their own; mutations overwrite through the snapshot worker.
type RedisSnapshotStore struct {
	client *redis.Client
}

func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func (s *RedisSnapshotStore) key(userID string) string {
	return fmt.Sprintf("stats:%s", userID)
}

func (s *RedisSnapshotStore) GetSnapshot(ctx context.Context, userID string) (*domain.ProgressSnapshot, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot domain.ProgressSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		log.Printf("[CACHE] Corrupted snapshot for user %s, cleaning up key", userID)
		s.client.Del(ctx, s.key(userID))
		return nil, nil
	}

	return &snapshot, nil
}

func (s *RedisSnapshotStore) SetSnapshot(ctx context.Context, userID string, snapshot *domain.ProgressSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.key(userID), data, snapshotTTL).Err()
}
