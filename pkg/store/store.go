// Package store persists generated puzzles for the HTTP API.
//
// Unlike the cache, the store is an authoritative record: puzzles created
// through the API are retrievable by ID until deleted. Backends:
//
//   - [MemoryStore]: process-local, for tests and single-instance usage
//   - [MongoStore]: durable storage for server deployments
package store

import (
	"context"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// ErrNotFound is returned when a puzzle ID has no stored document.
var ErrNotFound = errors.New(errors.ErrCodeNotFound, "puzzle not found")

// Store is the interface for puzzle persistence backends.
type Store interface {
	// Put stores a puzzle, replacing any existing document with the same ID.
	Put(ctx context.Context, p *puzzle.Puzzle) error

	// Get retrieves a puzzle by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*puzzle.Puzzle, error)

	// Delete removes a puzzle by ID. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored puzzles.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
