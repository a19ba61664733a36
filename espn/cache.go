package espn

import (
	"crypto/sha256"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// responseCache persists raw API responses on disk so repeated
// ingestion runs for the same season skip the network entirely. Keys
// are derived from the endpoint name and its arguments; a zero-value
// dir disables the cache.
type responseCache struct {
	dir string
}

func newResponseCache(dir string) *responseCache {
	return &responseCache{dir: dir}
}

func (c *responseCache) path(endpoint string, season int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", endpoint, season)))
	return filepath.Join(c.dir, fmt.Sprintf("%s_%x.json", endpoint, sum[:8]))
}

func (c *responseCache) get(endpoint string, season int) ([]byte, bool) {
	if c.dir == "" {
		return nil, false
	}

	b, err := os.ReadFile(c.path(endpoint, season))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *responseCache) put(endpoint string, season int, body []byte) {
	if c.dir == "" {
		return
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		log.Printf("error creating cache dir %s: %v", c.dir, err)
		return
	}

	// Cache misses are recoverable, cache write failures merely cost a
	// future network call.
	if err := os.WriteFile(c.path(endpoint, season), body, 0o644); err != nil {
		log.Printf("error writing cache file for %s/%d: %v", endpoint, season, err)
	}
}
