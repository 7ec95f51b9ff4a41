// Package cache stores downloaded puzzle material on disk so repeated runs
// never re-fetch. Entries are keyed by sha256 of the URL and stored as
// <key>.meta.json plus <key>.body. Puzzle inputs are immutable once
// published, so there is no expiry or revalidation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Entry records where a body came from and when it was saved.
type Entry struct {
	URL     string    `json:"url"`
	SavedAt time.Time `json:"saved_at"`
}

// Cache is a deterministic on-disk body cache.
type Cache struct {
	Dir string
}

func (c *Cache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *Cache) key(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])
}

func (c *Cache) metaPath(key string) string { return filepath.Join(c.Dir, key+".meta.json") }
func (c *Cache) bodyPath(key string) string { return filepath.Join(c.Dir, key+".body") }

// Load returns the cached body for url, or ok=false when absent.
func (c *Cache) Load(_ context.Context, url string) ([]byte, bool, error) {
	if err := c.ensureDir(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(c.bodyPath(c.key(url)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Save writes the body and its metadata for url.
func (c *Cache) Save(_ context.Context, url string, body []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	key := c.key(url)
	meta, err := json.Marshal(Entry{URL: url, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.metaPath(key), meta, 0o644); err != nil {
		return err
	}
	return os.WriteFile(c.bodyPath(key), body, 0o644)
}

// Clear removes every entry in the cache directory.
func (c *Cache) Clear() error {
	if c == nil || c.Dir == "" {
		return nil
	}
	entries, err := os.ReadDir(c.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.Dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
