package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

// RedisCalendarCache shares generated calendars between instances. Redis
// failures are logged and treated as misses.
type RedisCalendarCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func NewRedisCalendarCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisCalendarCache {
	return &RedisCalendarCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "calendar_cache").Logger(),
	}
}

func (c *RedisCalendarCache) GetCalendar(ctx context.Context, trainerID uint, fromDate string, horizon int) (domain.Calendar, bool) {
	key := CalendarKey(trainerID, fromDate, horizon)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("calendar cache read failed")
		}
		return nil, false
	}

	var cal domain.Calendar
	if err := json.Unmarshal(raw, &cal); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("calendar cache entry corrupt")
		return nil, false
	}
	return cal, true
}

func (c *RedisCalendarCache) StoreCalendar(ctx context.Context, trainerID uint, fromDate string, horizon int, cal domain.Calendar) {
	key := CalendarKey(trainerID, fromDate, horizon)

	raw, err := json.Marshal(cal)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("calendar cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("calendar cache write failed")
	}
}

func (c *RedisCalendarCache) InvalidateTrainer(ctx context.Context, trainerID uint) {
	iter := c.client.Scan(ctx, 0, trainerPrefix(trainerID)+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn().Err(err).Uint("trainer_id", trainerID).Msg("calendar cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Uint("trainer_id", trainerID).Msg("calendar cache invalidation failed")
	}
}
