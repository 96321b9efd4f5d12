// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/iso639/internal/platform/constants"
)

// RedisStatsRepository implements [StatsRepository] with a Redis sorted set
// whose members are part3 codes and whose scores are resolution counts.
type RedisStatsRepository struct {
	client *redis.Client
	key    string
}

// NewRedisStatsRepository creates a new Redis-backed StatsRepository.
func NewRedisStatsRepository(client *redis.Client) *RedisStatsRepository {
	return NewRedisStatsRepositoryWithKey(client, constants.RedisKeyResolved)
}

// NewRedisStatsRepositoryWithKey stores the counters under a custom sorted-set key.
func NewRedisStatsRepositoryWithKey(client *redis.Client, key string) *RedisStatsRepository {
	return &RedisStatsRepository{client: client, key: key}
}

// Increment adds one to the counter of part3.
func (repository *RedisStatsRepository) Increment(ctx context.Context, part3 string) error {
	if err := repository.client.ZIncrBy(ctx, repository.key, 1, part3).Err(); err != nil {
		return fmt.Errorf("redis_stats_increment_failed: %w", err)
	}
	return nil
}

/*
Top returns the most resolved codes, highest count first.

Parameters:
  - ctx: context.Context
  - limit: Maximum number of entries (must be positive)

Returns:
  - []Usage: Ranked counters, empty when nothing was counted yet
  - error: Connectivity errors
*/
func (repository *RedisStatsRepository) Top(ctx context.Context, limit int) ([]Usage, error) {
	entries, err := repository.client.ZRevRangeWithScores(ctx, repository.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_stats_top_failed: %w", err)
	}

	usages := make([]Usage, 0, len(entries))
	for _, entry := range entries {
		part3, ok := entry.Member.(string)
		if !ok {
			continue
		}
		usages = append(usages, Usage{Part3: part3, Count: int64(entry.Score)})
	}

	return usages, nil
}
