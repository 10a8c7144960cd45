package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/tagnote/pkg/core"
)

// indexEntry is the parsed form of a single note file.
type indexEntry struct {
	Note         core.Note `json:"note"`
	LastModified time.Time `json:"lastModified"`
}

// index is the persistent cache state.
type index struct {
	Version int                    `json:"version"`
	Entries map[string]*indexEntry `json:"entries"` // keyed by note ID
	dirty   bool
	mu      sync.RWMutex
}

// cache avoids re-parsing note files whose mtime has not changed.
type cache struct {
	Path  string // {vault}/{systemDir}/index.json
	index *index
}

func newCache(vaultPath, systemDir string) *cache {
	return &cache{
		Path: filepath.Join(vaultPath, systemDir, "index.json"),
		index: &index{
			Version: 1,
			Entries: make(map[string]*indexEntry),
		},
	}
}

// Load reads the cache from disk. A missing or corrupt file yields an empty index.
func (c *cache) Load() error {
	c.index.mu.Lock()
	defer c.index.mu.Unlock()

	data, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(data, c.index); err != nil || c.index.Entries == nil {
		c.index.Entries = make(map[string]*indexEntry)
	}
	c.index.dirty = false
	return nil
}

// Save persists the cache if anything changed since the last Load/Save.
func (c *cache) Save() error {
	c.index.mu.RLock()
	if !c.index.dirty {
		c.index.mu.RUnlock()
		return nil
	}
	data, err := json.MarshalIndent(c.index, "", "  ")
	c.index.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return err
	}
	if err := writeFileAtomic(c.Path, data, 0644); err != nil {
		return err
	}

	c.index.mu.Lock()
	c.index.dirty = false
	c.index.mu.Unlock()
	return nil
}

// Get returns the cached note when the entry exists and is as fresh as mtime.
func (c *cache) Get(id string, mtime time.Time) (core.Note, bool) {
	c.index.mu.RLock()
	defer c.index.mu.RUnlock()

	entry, ok := c.index.Entries[id]
	if !ok || !entry.LastModified.Equal(mtime) {
		return core.Note{}, false
	}
	return entry.Note, true
}

// Set records the parsed note for id.
func (c *cache) Set(id string, n core.Note, mtime time.Time) {
	c.index.mu.Lock()
	defer c.index.mu.Unlock()

	c.index.Entries[id] = &indexEntry{Note: n, LastModified: mtime}
	c.index.dirty = true
}

// Prune removes entries that are not in keep.
func (c *cache) Prune(keep map[string]bool) {
	c.index.mu.Lock()
	defer c.index.mu.Unlock()

	for id := range c.index.Entries {
		if !keep[id] {
			delete(c.index.Entries, id)
			c.index.dirty = true
		}
	}
}

// Delete drops a single entry.
func (c *cache) Delete(id string) {
	c.index.mu.Lock()
	defer c.index.mu.Unlock()

	if _, ok := c.index.Entries[id]; ok {
		delete(c.index.Entries, id)
		c.index.dirty = true
	}
}

// Len returns the number of entries.
func (c *cache) Len() int {
	c.index.mu.RLock()
	defer c.index.mu.RUnlock()
	return len(c.index.Entries)
}
