package web

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const logoTTL = time.Hour

type logoEntry struct {
	data  []byte
	ctype string
}

// logoCache keeps fetched logos per URL for ttl. A non-positive ttl
// disables caching.
type logoCache struct {
	cache *cache.Cache
}

func newLogoCache(ttl time.Duration) *logoCache {
	if ttl <= 0 {
		return &logoCache{}
	}
	return &logoCache{cache: cache.New(ttl, 2*ttl)}
}

func (c *logoCache) Store(url string, data []byte, ctype string) {
	if c.cache == nil || len(data) == 0 {
		return
	}
	c.cache.Set(url, logoEntry{data: append([]byte(nil), data...), ctype: ctype}, cache.DefaultExpiration)
}

func (c *logoCache) Select(url string) ([]byte, string, bool) {
	if c.cache == nil {
		return nil, "", false
	}
	v, ok := c.cache.Get(url)
	if !ok {
		return nil, "", false
	}
	entry, ok := v.(logoEntry)
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), entry.data...), entry.ctype, true
}
