// Package listing provides a bounded, invalidatable cache of directory
// children. Reads are blocking filesystem calls; interactive callers must
// go through a worker goroutine and deliver the result back as an event.
package listing

import (
	"fmt"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kk-code-lab/dirnav/internal/fs"
)

// DefaultCapacity is the number of distinct (path, limit) keys retained.
const DefaultCapacity = 100

// Key identifies one bounded listing request.
type Key struct {
	Path  string
	Limit int
}

// Error reports a directory that could not be read. Failed reads are never
// cached; the next List for the same key retries.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("list directory %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReadFunc reads up to limit children of dir.
type ReadFunc func(dir string, limit int) ([]fs.Entry, error)

// Cache is an LRU-bounded directory listing cache. It is safe for
// concurrent use. The lock covers only the store, not the directory read:
// two goroutines missing the same key may both read the directory, and the
// later store wins, leaving exactly one surviving entry per key.
type Cache struct {
	mu    sync.Mutex
	store *lru.Cache[Key, []fs.Entry]
	read  ReadFunc
}

// New returns a cache retaining up to capacity keys, evicted strictly
// least-recently-used; both hits and inserts refresh recency.
func New(capacity int) *Cache {
	store, err := lru.New[Key, []fs.Entry](capacity)
	if err != nil {
		// Only reachable with a non-positive capacity.
		panic(err)
	}
	return &Cache{
		store: store,
		read:  fs.ReadChildren,
	}
}

// SetReader replaces the directory reader. Intended for tests.
func (c *Cache) SetReader(read ReadFunc) {
	c.mu.Lock()
	c.read = read
	c.mu.Unlock()
}

// List returns up to limit children of dir, serving repeats of the same
// (dir, limit) key from the cache without touching the filesystem. A
// failed read returns a *Error and stores nothing.
func (c *Cache) List(dir string, limit int) ([]fs.Entry, error) {
	key := Key{Path: dir, Limit: limit}

	c.mu.Lock()
	if entries, ok := c.store.Get(key); ok {
		c.mu.Unlock()
		return entries, nil
	}
	read := c.read
	c.mu.Unlock()

	entries, err := read(dir, limit)
	if err != nil {
		return nil, &Error{Path: dir, Err: err}
	}

	c.mu.Lock()
	c.store.Add(key, entries)
	c.mu.Unlock()
	return entries, nil
}

// Reload drops every cached key whose path equals dir, forcing the next
// List for that directory to re-read the filesystem.
func (c *Cache) Reload(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.store.Keys() {
		if key.Path == dir {
			c.store.Remove(key)
		}
	}
}

// ReloadTree drops cached keys for root and everything beneath it.
func (c *Cache) ReloadTree(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.store.Keys() {
		if key.Path == root || isBelow(key.Path, root) {
			c.store.Remove(key)
		}
	}
}

// Len reports the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

func isBelow(path, root string) bool {
	if len(path) <= len(root) {
		return false
	}
	if path[:len(root)] != root {
		return false
	}
	return root == string(filepath.Separator) || path[len(root)] == filepath.Separator
}
