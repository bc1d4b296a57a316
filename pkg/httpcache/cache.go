// Package httpcache caches Strava GET responses between local runs so that
// repeated analysis doesn't re-page the whole activity history.
package httpcache

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/maypok86/otter/v2"
)

// Entry is one cached response body.
type Entry struct {
	ExpiresAt time.Time `json:"expires_at"`
	Data      []byte    `json:"data"`
}

// Cache is an otter-backed TTL cache with a gob snapshot on disk. A batch
// run loads the snapshot once and saves it once on Close.
type Cache struct {
	cache  *otter.Cache[string, Entry]
	logger *slog.Logger
	dir    string
	ttl    time.Duration
}

// New opens (or creates) a cache under dir.
func New(dir string, ttl time.Duration, logger *slog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	cache := otter.Must(&otter.Options[string, Entry]{
		MaximumSize:      10_000,
		InitialCapacity:  1_000,
		ExpiryCalculator: otter.ExpiryWriting[string, Entry](ttl),
	})

	c := &Cache{cache: cache, dir: dir, ttl: ttl, logger: logger}
	if err := c.loadFromDisk(); err != nil {
		logger.Warn("failed to load cache from disk", "error", err)
	}
	logger.Debug("cache initialized", "dir", dir, "entries", c.cache.EstimatedSize())
	return c, nil
}

func cacheKey(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])
}

// Get returns the cached body for a URL, if present and fresh.
func (c *Cache) Get(url string) ([]byte, bool) {
	key := cacheKey(url)
	entry, found := c.cache.GetIfPresent(key)
	if !found {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		c.cache.Invalidate(key)
		return nil, false
	}
	return entry.Data, true
}

// Set stores a response body for a URL.
func (c *Cache) Set(url string, data []byte) {
	c.cache.Set(cacheKey(url), Entry{Data: data, ExpiresAt: time.Now().Add(c.ttl)})
}

func (c *Cache) snapshotPath() string {
	return filepath.Join(c.dir, "velograph-cache.gob")
}

func (c *Cache) loadFromDisk() error {
	file, err := os.Open(c.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening cache file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			c.logger.Debug("failed to close cache file", "error", closeErr)
		}
	}()

	var entries map[string]Entry
	if err := gob.NewDecoder(file).Decode(&entries); err != nil {
		return fmt.Errorf("decoding cache file: %w", err)
	}

	now := time.Now()
	for key, entry := range entries {
		if now.Before(entry.ExpiresAt) {
			c.cache.Set(key, entry)
		}
	}
	return nil
}

func (c *Cache) saveToDisk() error {
	entries := make(map[string]Entry)
	now := time.Now()
	c.cache.All()(func(key string, entry Entry) bool {
		if now.Before(entry.ExpiresAt) {
			entries[key] = entry
		}
		return true
	})

	tempPath := c.snapshotPath() + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	if err := gob.NewEncoder(file).Encode(entries); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			c.logger.Debug("failed to close temp cache file", "error", closeErr)
		}
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing cache file: %w", err)
	}
	if err := os.Rename(tempPath, c.snapshotPath()); err != nil {
		return fmt.Errorf("replacing cache file: %w", err)
	}

	c.logger.Debug("cache saved", "entries", len(entries), "path", c.snapshotPath())
	return nil
}

// Close snapshots the cache to disk.
func (c *Cache) Close() error {
	return c.saveToDisk()
}

// Transport wraps an http.RoundTripper with response caching for GET
// requests. Non-GET requests (the OAuth token refresh) pass through.
type Transport struct {
	Base   http.RoundTripper
	Cache  *Cache
	Logger *slog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Cache == nil || req.Method != http.MethodGet {
		return base.RoundTrip(req)
	}

	url := req.URL.String()
	if data, found := t.Cache.Get(url); found {
		resp := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader(data)),
			Header:     make(http.Header),
			Request:    req,
		}
		resp.Header.Set("X-From-Cache", "true")
		return resp, nil
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.Logger.Debug("failed to close response body", "error", closeErr)
		}
		if err != nil {
			return nil, err
		}
		t.Cache.Set(url, body)
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}
