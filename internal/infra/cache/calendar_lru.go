package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

// LRUCalendarCache keeps generated calendars in process memory.
type LRUCalendarCache struct {
	cache *lru.LRU[string, domain.Calendar]
}

func NewLRUCalendarCache(size int, ttl time.Duration) *LRUCalendarCache {
	if size <= 0 {
		size = 512
	}
	return &LRUCalendarCache{
		cache: lru.NewLRU[string, domain.Calendar](size, nil, ttl),
	}
}

func (c *LRUCalendarCache) GetCalendar(_ context.Context, trainerID uint, fromDate string, horizon int) (domain.Calendar, bool) {
	return c.cache.Get(CalendarKey(trainerID, fromDate, horizon))
}

func (c *LRUCalendarCache) StoreCalendar(_ context.Context, trainerID uint, fromDate string, horizon int, cal domain.Calendar) {
	c.cache.Add(CalendarKey(trainerID, fromDate, horizon), cal)
}

func (c *LRUCalendarCache) InvalidateTrainer(_ context.Context, trainerID uint) {
	for _, key := range c.cache.Keys() {
		if belongsTo(key, trainerID) {
			c.cache.Remove(key)
		}
	}
}
