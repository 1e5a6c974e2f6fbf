// Package cache provides result caching for conversion and render outputs.
//
// A [Cache] stores opaque byte blobs under string keys with optional
// expiration. Three implementations ship with the package: [FileCache] for
// CLI usage, [MemoryCache] for in-process reuse, and [NullCache] to disable
// caching without branching at call sites.
//
// Keys are produced by a [Keyer] so every component derives them the same
// way. [ScopedKeyer] prefixes another keyer's output when separate
// namespaces share one store.
package cache

import (
	"context"
	"time"
)

// TTLs per artifact class. Converted molecules are content-addressed, so
// they effectively never go stale; rendered images follow style options that
// change more often.
const (
	TTLConvert = 30 * 24 * time.Hour
	TTLRender  = 7 * 24 * time.Hour
)

// Cache stores byte blobs under string keys.
type Cache interface {
	// Get returns the cached data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKeyOpts are the render options that participate in cache keys.
type RenderKeyOpts struct {
	Format       string
	Detailed     bool
	CarbonLabels bool
}

// Keyer derives cache keys for the two cacheable stages.
type Keyer interface {
	// ConvertKey keys a converted molecule by source format and the hash of
	// the source text.
	ConvertKey(format, contentHash string) string

	// RenderKey keys a rendered artifact by the hash of the molecule's JSON
	// form and the render options.
	RenderKey(contentHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key derivation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ConvertKey generates a key for a converted molecule.
func (k *DefaultKeyer) ConvertKey(format, contentHash string) string {
	return hashKey("convert", format, contentHash)
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(contentHash string, opts RenderKeyOpts) string {
	return hashKey("render", contentHash, opts)
}
