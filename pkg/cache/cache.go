// Package cache provides pluggable caching for pipeline stage results.
//
// Three backends are available: a file-based cache for CLI usage
// ([NewFileCache]), a Redis-backed cache for server deployments
// ([NewRedisCache]), and a no-op cache for tests and --no-cache runs
// ([NewNullCache]). Keys are derived deterministically from content hashes
// through a [Keyer], so identical inputs always hit the same entry
// regardless of backend.
package cache

import (
	"context"
	"time"
)

// Default TTLs per stage result. Centrality tables are pure functions of
// their inputs, so the TTL only bounds disk usage, not staleness. Rendered
// artifacts embed style configuration and expire faster.
const (
	DefaultTableTTL    = 7 * 24 * time.Hour
	DefaultArtifactTTL = 24 * time.Hour
)

// Cache is the storage backend interface.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TableKey identifies the centrality table computed for a dataset.
	TableKey(graphHash string) string

	// ArtifactKey identifies a rendered artifact for a dataset and encoding.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts captures everything that changes a rendered artifact
// beyond the underlying table.
type ArtifactKeyOpts struct {
	Format    string   // html, svg, png, json
	Physics   bool     // force simulation enabled in HTML output
	Palette   []string // community color palette
	BaseSize  float64
	SizeRange float64
}

// DefaultKeyer derives keys by SHA-256 hashing the components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard content-hash keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TableKey generates a key for a centrality table.
func (k *DefaultKeyer) TableKey(graphHash string) string {
	return hashKey("table", graphHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
