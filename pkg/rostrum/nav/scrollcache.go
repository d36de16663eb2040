package nav

const defaultMaxScrollEntries = 16

// scrollCache remembers viewport offsets per identity key so that returning
// to a page restores the reader's position. Bounded LRU: revisiting a key
// refreshes it, the oldest entry is evicted at capacity.
type scrollCache struct {
	offsets map[string]int
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

func newScrollCache() *scrollCache {
	return newScrollCacheWithSize(defaultMaxScrollEntries)
}

func newScrollCacheWithSize(maxSize int) *scrollCache {
	return &scrollCache{
		offsets: make(map[string]int),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *scrollCache) Get(key string) (int, bool) {
	if offset, exists := c.offsets[key]; exists {
		c.moveToEnd(key)
		return offset, true
	}
	return 0, false
}

func (c *scrollCache) Set(key string, offset int) {
	if _, exists := c.offsets[key]; exists {
		c.offsets[key] = offset
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.offsets[key] = offset
	c.order = append(c.order, key)
}

func (c *scrollCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *scrollCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.offsets, oldest)
}
