package memory

import (
	"time"

	"subject-panel-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const listKey = "subjects:list"

// SubjectListCache keeps the newest-first subject listing in memory for a
// short TTL. Every successful write drops it, so readers only ever see a
// slightly stale list, never a wrong one.
type SubjectListCache struct {
	cache *cache.Cache
}

func NewSubjectListCache(ttl time.Duration) *SubjectListCache {
	c := cache.New(ttl, 5*time.Minute)
	return &SubjectListCache{
		cache: c,
	}
}

func (c *SubjectListCache) Get() ([]*entity.Subject, bool) {
	if x, found := c.cache.Get(listKey); found {
		return x.([]*entity.Subject), true
	}
	return nil, false
}

func (c *SubjectListCache) Set(subjects []*entity.Subject) {
	c.cache.Set(listKey, subjects, cache.DefaultExpiration)
}

func (c *SubjectListCache) Invalidate() {
	c.cache.Delete(listKey)
}
