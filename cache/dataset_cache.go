package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"rental-viewer/models"
	"rental-viewer/utils"
)

// LoadFunc loads a dataset from a file path.
type LoadFunc func(path string) (*models.Dataset, error)

// identity changes whenever the file is rewritten.
type identity struct {
	size    int64
	modTime int64
}

type entry struct {
	id        identity
	dataset   *models.Dataset
	fetchedAt time.Time
}

// DatasetCache keeps loaded datasets keyed by absolute path. An entry is
// reused while the file's size and modification time are unchanged (and,
// with a TTL, while it is younger than the TTL). Cached datasets are
// shared read-only. Concurrent misses for the same file share one load.
type DatasetCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
	load    LoadFunc
	ttl     time.Duration
	logger  *utils.Logger
}

// New creates a cache that loads misses with load. A zero ttl disables
// age-based expiry.
func New(load LoadFunc, ttl time.Duration, logger *utils.Logger) *DatasetCache {
	return &DatasetCache{
		entries: make(map[string]*entry),
		load:    load,
		ttl:     ttl,
		logger:  logger,
	}
}

// Get returns the dataset for path, loading it if absent or stale.
// Failed loads are not cached.
func (c *DatasetCache) Get(path string) (*models.Dataset, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cache: resolve %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("cache: stat %q: %w", path, err)
	}
	id := identity{size: info.Size(), modTime: info.ModTime().UnixNano()}

	c.mu.RLock()
	e := c.entries[abs]
	c.mu.RUnlock()
	if e != nil && e.id == id && (c.ttl == 0 || time.Since(e.fetchedAt) < c.ttl) {
		c.logger.Debug("[cache] hit %s", filepath.Base(abs))
		return e.dataset, nil
	}

	key := fmt.Sprintf("%s|%d|%d", abs, id.size, id.modTime)
	v, err, shared := c.group.Do(key, func() (any, error) {
		if e != nil {
			c.logger.Info("[cache] %s changed, reloading", filepath.Base(abs))
		}
		ds, err := c.load(abs)
		if err != nil {
			c.Invalidate(abs)
			return nil, err
		}
		c.mu.Lock()
		c.entries[abs] = &entry{id: id, dataset: ds, fetchedAt: time.Now()}
		c.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("[cache] joined load of %s", filepath.Base(abs))
	}
	return v.(*models.Dataset), nil
}

// Invalidate drops the entry for path.
func (c *DatasetCache) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, abs)
	c.mu.Unlock()
}

// Len returns the number of cached datasets.
func (c *DatasetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
