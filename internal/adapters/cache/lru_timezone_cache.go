package cache

import (
	"container/list"
	"context"
	"sync"
	"timezone-months-service/internal/domain"
	"timezone-months-service/internal/metrics"
	"timezone-months-service/internal/ports"
)

type entry struct {
	key domain.Coordinates
	tz  string
}

// In-memory LRU cache in front of a TimezoneResolver, keyed by the exact
// coordinate pair. Resolution is deterministic, so cached answers are
// identical to fresh ones.
type LRUTimezoneCache struct {
	next     ports.TimezoneResolver
	capacity int

	mu    sync.Mutex
	queue *list.List
	items map[domain.Coordinates]*list.Element
}

func NewLRUTimezoneCache(next ports.TimezoneResolver, capacity int) *LRUTimezoneCache {
	return &LRUTimezoneCache{
		next:     next,
		capacity: capacity,
		queue:    list.New(),
		items:    make(map[domain.Coordinates]*list.Element, capacity),
	}
}

func (c *LRUTimezoneCache) Resolve(ctx context.Context, coords domain.Coordinates) string {
	if tz, ok := c.get(coords); ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return tz
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	tz := c.next.Resolve(ctx, coords)
	c.add(coords, tz)
	return tz
}

func (c *LRUTimezoneCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LRUTimezoneCache) get(key domain.Coordinates) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.queue.MoveToFront(el)
	return el.Value.(*entry).tz, true
}

func (c *LRUTimezoneCache) add(key domain.Coordinates, tz string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.queue.MoveToFront(el)
		el.Value.(*entry).tz = tz
		return
	}

	if c.queue.Len() >= c.capacity {
		if oldest := c.queue.Back(); oldest != nil {
			c.queue.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}

	c.items[key] = c.queue.PushFront(&entry{key: key, tz: tz})
}
