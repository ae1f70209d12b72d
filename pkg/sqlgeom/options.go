package sqlgeom

import (
	"runtime"

	"go.uber.org/zap"
)

// DecodeOptions configures decoding behavior.
type DecodeOptions struct {
	// RequireValid rejects payloads whose producer did not set the isValid
	// flag, returning ErrInvalidGeometry.
	RequireValid bool
}

// DefaultDecodeOptions returns default options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		RequireValid: false,
	}
}

// LoadOptions controls row-set decoding and error handling.
type LoadOptions struct {
	// Parallel enables concurrent decoding.
	// When true, rows are decoded by multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of decoder goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes decoding to continue when individual rows fail.
	// Failed rows are skipped and their errors collected.
	// When false, the first error stops decoding and is returned alone.
	SkipErrors bool

	// Progress is an optional callback for tracking progress.
	// Called with the number of rows processed so far and the total.
	Progress func(done, total int)

	// Logger receives one warning per failed row and a summary at the end.
	// Nil means no logging.
	Logger *zap.Logger

	// Decode is applied to every row.
	Decode DecodeOptions

	// Cache, when set, is consulted before decoding each payload.
	Cache *DecodeCache
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Progress:   nil,
		Logger:     zap.NewNop(),
		Decode:     DefaultDecodeOptions(),
	}
}

// CacheOptions sizes a DecodeCache.
type CacheOptions struct {
	// MaxBytes bounds the summed payload length of cached entries.
	MaxBytes int64

	// NumCounters is the number of admission counters. Ten times the number
	// of expected entries is a good value.
	NumCounters int64

	// Metrics enables hit/miss accounting returned by Stats.
	Metrics bool
}

// DefaultCacheOptions returns a 64MB cache with metrics enabled.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		MaxBytes:    64 << 20,
		NumCounters: 1e6,
		Metrics:     true,
	}
}
