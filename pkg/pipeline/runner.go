package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/puzzlecut/puzzlecut/pkg/cache"
	"github.com/puzzlecut/puzzlecut/pkg/grid"
	"github.com/puzzlecut/puzzlecut/pkg/neighbors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stages 1+2: Generate and build. Cached as one unit because the puzzle
	// document is a pure function of the generate options.
	genStart := time.Now()
	p, genHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Puzzle = p
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.PieceCount = len(p.Pieces)
	result.CacheInfo.GenerateHit = genHit

	if g, err := p.Grid(); err == nil {
		result.Stats.InternalEdges = g.InternalEdgeCount()
	}

	// Compute puzzle hash for cache keys and API responses
	if data, err := puzzle.Marshal(p); err == nil {
		result.PuzzleHash = cache.Hash(data)
	}

	r.Logger.Info("generated puzzle",
		"pieces", result.Stats.PieceCount,
		"edges", result.Stats.InternalEdges,
		"seed", opts.Seed,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, result.PuzzleHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates a puzzle with caching and returns cache hit info.
//
// The edge assignment completes and verifies before any piece geometry is
// derived, so a returned puzzle is always internally consistent.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*puzzle.Puzzle, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.PuzzleKey(opts.PuzzleKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			p, err := puzzle.Read(bytes.NewReader(data))
			if err == nil {
				return p, true, nil // Cache hit
			}
		}
	}

	g, err := grid.New(opts.Rows, opts.Cols, opts.ImageWidth, opts.ImageHeight)
	if err != nil {
		return nil, false, err
	}

	cfg := opts.StudConfig()
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	// Phase 1: assign every internal edge. Must complete before any piece
	// is built.
	table, err := neighbors.Assign(g.Rows, g.Cols, neighbors.NewSource(opts.Seed))
	if err != nil {
		return nil, false, err
	}

	// Phase 2: derive all pieces from the immutable table.
	p := puzzle.Build(g, table, cfg, opts.Seed)

	// Cache the result
	if data, err := puzzle.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPuzzle)
	}

	return p, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*puzzle.Puzzle, error) {
	p, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. puzzleHash may be empty, in which case it is computed here.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *puzzle.Puzzle, puzzleHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if puzzleHash == "" {
		data, err := puzzle.Marshal(p)
		if err != nil {
			return nil, false, fmt.Errorf("serialize puzzle for cache key: %w", err)
		}
		puzzleHash = cache.Hash(data)
	}

	// PNG output with a texture depends on image bytes we don't hash, so it
	// is never served from or written to the cache.
	cacheable := func(format string) bool {
		return !(format == FormatPNG && opts.Texture != nil)
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		if !cacheable(format) {
			allCached = false
			break
		}
		cacheKey := r.Keyer.ArtifactKey(puzzleHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := RenderPuzzle(ctx, p, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		if !cacheable(format) {
			continue
		}
		cacheKey := r.Keyer.ArtifactKey(puzzleHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, p *puzzle.Puzzle, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, "", opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
