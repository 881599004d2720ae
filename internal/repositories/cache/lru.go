// Package cache holds the report cache implementations.
package cache

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUReportCache is an in-process, size-bounded report cache with TTL.
type LRUReportCache struct {
	entries  *expirable.LRU[string, []byte]
	revision atomic.Uint64
}

// NewLRUReportCache creates a cache holding at most size entries for ttl each.
func NewLRUReportCache(size int, ttl time.Duration) *LRUReportCache {
	if size <= 0 {
		size = 128
	}
	return &LRUReportCache{entries: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

var _ portsrepo.ReportCache = (*LRUReportCache)(nil)

func entryKey(revision uint64, key string) string {
	return strconv.FormatUint(revision, 10) + ":" + key
}

func (c *LRUReportCache) Revision(_ context.Context) (uint64, error) {
	return c.revision.Load(), nil
}

func (c *LRUReportCache) Get(_ context.Context, revision uint64, key string) ([]byte, bool, error) {
	value, ok := c.entries.Get(entryKey(revision, key))
	return value, ok, nil
}

// Set drops values computed for a revision that is no longer current.
func (c *LRUReportCache) Set(_ context.Context, revision uint64, key string, value []byte) error {
	if revision != c.revision.Load() {
		return nil
	}
	c.entries.Add(entryKey(revision, key), value)
	return nil
}

// Invalidate moves to a new revision and drops entries of older ones.
func (c *LRUReportCache) Invalidate(_ context.Context) error {
	c.revision.Add(1)
	c.entries.Purge()
	return nil
}
