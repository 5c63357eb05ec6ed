package driver

import (
	lru "github.com/hashicorp/golang-lru"

	"fire/internal/token"
)

// MemoryCache keeps recently lexed token streams in process, keyed like
// DiskCache. Files with identical content share one entry.
// Safe for concurrent use; returned slices must not be modified.
type MemoryCache struct {
	arc *lru.ARCCache
}

// NewMemoryCache creates a cache holding up to size token streams.
func NewMemoryCache(size int) (*MemoryCache, error) {
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{arc: arc}, nil
}

func (c *MemoryCache) Get(key Digest) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.arc.Get(key)
	if !ok {
		return nil, false
	}
	toks, ok := v.([]token.Token)
	return toks, ok
}

func (c *MemoryCache) Add(key Digest, toks []token.Token) {
	if c == nil {
		return
	}
	c.arc.Add(key, toks)
}

// Len reports the number of cached streams.
func (c *MemoryCache) Len() int {
	if c == nil {
		return 0
	}
	return c.arc.Len()
}
