package sqlgeom

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/dgryski/go-farm"
	"github.com/twpayne/go-geom"
)

// conflictSeed seeds the second hash ristretto uses to tell apart keys whose
// fingerprints collide.
const conflictSeed = 0x5eed5a1e

// DecodeCache memoizes decoded geometries by payload content.
//
// Tables often repeat the same shape in many rows (a shared boundary, a
// default point). The cache is keyed by a fingerprint of the raw payload and
// costed by payload length, so MaxBytes bounds the input bytes represented.
//
// Cached geometries are shared between callers and must not be modified.
// Failed decodes are never cached.
//
// Example:
//
//	cache, err := sqlgeom.NewDecodeCache(sqlgeom.DefaultCacheOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
//	g, err := cache.Get(columnValue, sqlgeom.Decode)
type DecodeCache struct {
	cache *ristretto.Cache[[]byte, geom.T]
}

// CacheStats contains cache statistics. All counts are zero when the cache
// was created without metrics.
type CacheStats struct {
	Hits      uint64  // Lookups answered from the cache
	Misses    uint64  // Lookups that ran the decoder
	KeysAdded uint64  // Entries admitted
	HitRatio  float64 // Hits / (Hits + Misses)
}

// NewDecodeCache creates a cache sized by opts.
func NewDecodeCache(opts CacheOptions) (*DecodeCache, error) {
	if opts.MaxBytes <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", opts.MaxBytes)
	}
	if opts.NumCounters <= 0 {
		opts.NumCounters = DefaultCacheOptions().NumCounters
	}

	cache, err := ristretto.NewCache(&ristretto.Config[[]byte, geom.T]{
		NumCounters:        opts.NumCounters,
		MaxCost:            opts.MaxBytes,
		BufferItems:        64,
		Metrics:            opts.Metrics,
		IgnoreInternalCost: true,
		KeyToHash: func(key []byte) (uint64, uint64) {
			return farm.Fingerprint64(key), farm.Hash64WithSeed(key, conflictSeed)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create decode cache: %w", err)
	}
	return &DecodeCache{cache: cache}, nil
}

// Get returns the geometry for data, calling decode on a miss.
//
// The decoded value is stored with a cost of len(data). Errors from decode
// are returned unchanged and leave the cache untouched.
func (c *DecodeCache) Get(data []byte, decode func([]byte) (geom.T, error)) (geom.T, error) {
	if g, ok := c.cache.Get(data); ok {
		return g, nil
	}

	g, err := decode(data)
	if err != nil {
		return nil, err
	}

	// Set is buffered; Wait makes the entry visible to the next Get.
	if c.cache.Set(data, g, int64(len(data))) {
		c.cache.Wait()
	}
	return g, nil
}

// Stats returns cache statistics.
func (c *DecodeCache) Stats() CacheStats {
	m := c.cache.Metrics
	return CacheStats{
		Hits:      m.Hits(),
		Misses:    m.Misses(),
		KeysAdded: m.KeysAdded(),
		HitRatio:  m.Ratio(),
	}
}

// Clear removes all entries.
func (c *DecodeCache) Clear() {
	c.cache.Clear()
}

// Close stops the cache's background goroutines. The cache must not be used
// afterwards.
func (c *DecodeCache) Close() {
	c.cache.Close()
}
