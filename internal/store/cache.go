package store

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 4096

// Cache remembers names known to be recorded.
type Cache interface {
	Has(name string) bool
	Add(name string)
	Clear()
}

// LRUCache bounds the set of remembered names.
type LRUCache struct {
	names *lru.Cache[string, struct{}]
}

// NewLRUCache creates a cache holding at most size names.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	names, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{names: names}, nil
}

func (c *LRUCache) Has(name string) bool {
	_, ok := c.names.Get(name)
	return ok
}

func (c *LRUCache) Add(name string) {
	c.names.Add(name, struct{}{})
}

func (c *LRUCache) Clear() {
	c.names.Purge()
}
