package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

// CandidateCacheService holds the hot snapshot of discoverable user
// records that every nearby query scans. A miss returns (nil, nil) so
// the caller can fall back to the store.
type CandidateCacheService interface {
	GetSnapshot(ctx context.Context) ([]domain.UserLocationRecord, error)
	SetSnapshot(ctx context.Context, records []domain.UserLocationRecord, ttl time.Duration) error
}

type CandidateCache struct {
	client *goredis.Client
	key    string
}

func NewCandidateCache(r *Redis) *CandidateCache {
	return &CandidateCache{
		client: r.Client,
		key:    "candidates:visible",
	}
}

func (c *CandidateCache) GetSnapshot(ctx context.Context) ([]domain.UserLocationRecord, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.UserLocationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *CandidateCache) SetSnapshot(ctx context.Context, records []domain.UserLocationRecord, ttl time.Duration) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
