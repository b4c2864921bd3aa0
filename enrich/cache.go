package enrich

import (
	"sync"
	"time"
)

// Cache 是补充字段的内存 TTL 缓存，减少对协作方的批量往返。
// 惰性过期：读取时校验，不起后台协程。
type Cache struct {
	mu   sync.RWMutex
	data map[int64]cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	fields   map[string]any
	expireAt time.Time
}

// NewCache 创建缓存；ttl <= 0 时取默认 5 分钟。
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{
		data: make(map[int64]cacheEntry),
		ttl:  ttl,
	}
}

// Get 返回缓存的补充字段；过期或缺席返回 (nil, false)。
func (c *Cache) Get(id int64) (map[string]any, bool) {
	c.mu.RLock()
	e, ok := c.data[id]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expireAt) {
		return nil, false
	}
	return e.fields, true
}

// Put 写入补充字段。
func (c *Cache) Put(id int64, fields map[string]any) {
	c.mu.Lock()
	c.data[id] = cacheEntry{
		fields:   fields,
		expireAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}
