package manager

import (
	"sync"
	"time"
)

// listKey identifies one memoized challenge list. Release filtering changes
// the visible set, so it is part of the key alongside the actor; otherwise
// an admin preview could hand unreleased challenges to a player list.
type listKey struct {
	actor          string
	requireRelease bool
}

type listEntry struct {
	challenges []ChallengeSummary
	expires    time.Time
}

// listCache memoizes ListChallenges results. Listing renders every
// challenge directory through the template engine, which is far too much
// work for a list the frontend polls every few seconds, and a few seconds
// of staleness does not matter there. Sync flushes the cache wholesale.
type listCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[listKey]listEntry
}

func newListCache(ttl time.Duration) *listCache {
	return &listCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[listKey]listEntry),
	}
}

func (c *listCache) get(key listKey) ([]ChallengeSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.challenges, true
}

func (c *listCache) put(key listKey, challenges []ChallengeSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = listEntry{challenges: challenges, expires: c.now().Add(c.ttl)}
}

func (c *listCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[listKey]listEntry)
}
