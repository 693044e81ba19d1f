package lutfilter

import (
	"errors"
	"fmt"

	"github.com/gablabelle/expo-lut-filter/cache"
)

// FilterEntry is an immutable cached filter: a parsed LUT cube keyed by a
// filter identifier. Intensity is deliberately not part of the entry; it
// is a per-call parameter so concurrent callers with different intensities
// share one cube without interfering.
type FilterEntry struct {
	// ID is the filter identifier the entry was cached under.
	ID string

	// Cube is the parsed lookup cube.
	Cube *Cube

	// Degraded reports that the reference image did not contain exactly
	// N³ pixels and part of the cube was left at zero. Callers that
	// require a complete cube should reject degraded entries.
	Degraded bool
}

// FilterCache memoizes built LUT cubes by filter id so repeated application
// of the same filter skips re-parsing the reference image.
//
// The cache is unbounded by default, mirroring a process-lifetime filter
// registry; use NewFilterCacheWithLimit when memory bounds are needed.
// FilterCache is safe for concurrent use: concurrent first-time requests
// for the same id result in exactly one build, and every caller observes
// the same completed entry.
type FilterCache struct {
	entries *cache.Cache[string, *FilterEntry]
}

// NewFilterCache creates an unbounded, grow-only filter cache.
func NewFilterCache() *FilterCache {
	return &FilterCache{entries: cache.New[string, *FilterEntry](0)}
}

// NewFilterCacheWithLimit creates a filter cache that evicts the least
// recently used entries once it holds more than limit filters.
func NewFilterCacheWithLimit(limit int) *FilterCache {
	return &FilterCache{entries: cache.New[string, *FilterEntry](limit)}
}

// GetOrBuild returns the cached entry for id, building it from the
// reference image on the first request. The builder runs at most once per
// id, even under concurrent calls.
//
// A reference image whose pixel count does not match dimension³ produces a
// degraded entry: it is cached (so the broken reference is still parsed
// only once) with Degraded set, letting every caller decide whether to
// reject it. Fatal build errors are not cached and are returned wrapped
// with the filter id.
func (c *FilterCache) GetOrBuild(id string, ref *Pixmap, dimension int, layout Layout) (*FilterEntry, error) {
	entry, err := c.entries.GetOrCreate(id, func() (*FilterEntry, error) {
		cube, err := BuildCube(ref, dimension, layout)
		var mismatch *SizeMismatchError
		if err != nil && !errors.As(err, &mismatch) {
			return nil, fmt.Errorf("build filter %q: %w", id, err)
		}
		Logger().Debug("built LUT cube", "filter", id, "dimension", dimension,
			"layout", layout.String(), "degraded", mismatch != nil)
		return &FilterEntry{ID: id, Cube: cube, Degraded: mismatch != nil}, nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Get returns the cached entry for id without building, or (nil, false).
func (c *FilterCache) Get(id string) (*FilterEntry, bool) {
	return c.entries.Get(id)
}

// Evict removes the entry for id, if present.
func (c *FilterCache) Evict(id string) bool {
	return c.entries.Delete(id)
}

// Len returns the number of cached filters.
func (c *FilterCache) Len() int {
	return c.entries.Len()
}
