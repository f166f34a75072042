package schedule

import (
	"os"
	"sync"
	"time"

	"github.com/monykiss/schedkit/internal/formats/xlsx"
)

// Cache memoizes loaded stores keyed by workbook path and modification time.
// Parsing the workbook is the only slow operation in a query; repeated
// questions against the same upload skip it entirely. Stores are immutable
// after construction, so handing the same *Store to concurrent readers is
// safe.
type Cache struct {
	mu        sync.Mutex
	aliases   AliasTable
	stopWords []string
	entries   map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	store   *Store
}

// NewCache creates an empty load cache using the given alias table. Any
// stopWords are stamped onto every loaded store.
func NewCache(aliases AliasTable, stopWords ...string) *Cache {
	return &Cache{
		aliases:   aliases,
		stopWords: stopWords,
		entries:   make(map[string]cacheEntry),
	}
}

// Load returns the store for the workbook at path, reusing a previous load
// when the file has not changed since.
func (c *Cache) Load(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[path]; ok && entry.modTime.Equal(info.ModTime()) {
		return entry.store, nil
	}

	wb, err := xlsx.ReadFile(path)
	if err != nil {
		return nil, err
	}
	store, err := LoadWithAliases(wb, c.aliases)
	if err != nil {
		return nil, err
	}
	store.StopWords = c.stopWords

	c.entries[path] = cacheEntry{modTime: info.ModTime(), store: store}
	return store, nil
}

// Invalidate drops the cached store for path, forcing the next Load to
// re-parse. The watcher calls this on file events.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
