package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterService backs the per-room slow-mode chat throttle with redis:
// the first message claims a key with the slow-mode interval as TTL, and
// further messages are rejected until it expires.
type RateLimiterService struct {
	redis *redis.Client
}

func NewRateLimiterService(redis *redis.Client) *RateLimiterService {
	return &RateLimiterService{
		redis: redis,
	}
}

func (rls *RateLimiterService) Allow(ctx context.Context, roomID, userID string, interval time.Duration) (bool, error) {
	key := fmt.Sprintf("slow_mode_%s_%s", roomID, userID)
	ok, err := rls.redis.SetNX(ctx, key, "1", interval).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}
