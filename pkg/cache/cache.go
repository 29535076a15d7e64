// Package cache provides pluggable byte caching for the generation pipeline.
//
// Puzzle generation is a pure function of its options and seed, so cached
// documents and rendered artifacts never go stale — TTLs exist only to bound
// disk and memory usage. Backends:
//
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are derived by a [Keyer] from content hashes, so any option that
// changes the output changes the key.
package cache

import (
	"context"
	"time"
)

// TTLs per entry kind. Generated puzzles are deterministic, so these bound
// storage rather than freshness.
const (
	// TTLPuzzle applies to generated puzzle documents.
	TTLPuzzle = 30 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs (SVG, PNG, JSON, DOT).
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PuzzleKeyOpts are the generation options that feed a puzzle cache key.
type PuzzleKeyOpts struct {
	Rows        int
	Cols        int
	ImageWidth  float64
	ImageHeight float64
	Seed        uint64
	ConfigHash  string
}

// ArtifactKeyOpts are the render options that feed an artifact cache key.
// Every option that changes rendered output must appear here, or stale
// artifacts get served across option changes.
type ArtifactKeyOpts struct {
	Format   string
	Stroke   string
	Fill     bool
	Labels   bool
	Exploded float64
	Detailed bool
	Scale    float64
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// PuzzleKey generates a key for a generated puzzle document.
	PuzzleKey(opts PuzzleKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from the
	// content hash of the puzzle it renders.
	ArtifactKey(puzzleHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes option structs into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PuzzleKey generates a key for a generated puzzle document.
func (k *DefaultKeyer) PuzzleKey(opts PuzzleKeyOpts) string {
	return hashKey("puzzle", opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(puzzleHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", puzzleHash, opts)
}
