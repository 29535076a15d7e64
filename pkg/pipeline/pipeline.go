// Package pipeline provides the core generation pipeline for Puzzlecut.
//
// This package implements the complete generate → build → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Randomly assign complementary tab/indent polarities to every
//     internal edge of the grid (the only stage that consumes randomness)
//  2. Build: Derive every piece's contour, bounds, and sample transform from
//     the completed neighbor table
//  3. Render: Generate output in various formats (SVG, PNG, JSON, DOT)
//
// The generate stage runs to completion before any piece is built, so piece
// construction never observes a partially assigned edge.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rows:        6,
//	    Cols:        8,
//	    ImageWidth:  1200,
//	    ImageHeight: 900,
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Generate only
//	p, err := runner.Generate(ctx, opts)
//
//	// Render an existing puzzle
//	artifacts, err := runner.Render(ctx, p, opts)
package pipeline

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/puzzlecut/puzzlecut/pkg/cache"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultRows is the default number of grid rows.
	DefaultRows = 6

	// DefaultCols is the default number of grid columns.
	DefaultCols = 8

	// DefaultImageWidth is the default image frame width.
	DefaultImageWidth = 1200.0

	// DefaultImageHeight is the default image frame height.
	DefaultImageHeight = 900.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the default PNG rasterization scale.
	DefaultScale = 1.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Rows        int     `json:"rows,omitempty"`
	Cols        int     `json:"cols,omitempty"`
	ImageWidth  float64 `json:"image_width,omitempty"`
	ImageHeight float64 `json:"image_height,omitempty"`
	Seed        uint64  `json:"seed,omitempty"`
	Refresh     bool    `json:"refresh,omitempty"`

	// Stud profile. Nil means stud.Default().
	Config *stud.Config `json:"config,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Stroke   string   `json:"stroke,omitempty"`
	Fill     bool     `json:"fill,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Exploded float64  `json:"exploded,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // DOT edge polarity labels
	Scale    float64  `json:"scale,omitempty"`    // PNG pixels per image unit

	// Runtime options (not serialized)
	Texture image.Image `json:"-"`
	Logger  *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Puzzle is the generated puzzle document.
	Puzzle *puzzle.Puzzle

	// PuzzleHash is the content hash of the serialized puzzle.
	PuzzleHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PieceCount    int
	InternalEdges int
	GenerateTime  time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the puzzle document came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for puzzle generation.
//
// Zero values mean "absent" and take defaults. JSON requests omit unset
// fields, so an explicit zero is indistinguishable from omission at this
// layer. Negative dimensions pass through and are rejected by grid.New
// during generation.
func (o *Options) ValidateForGenerate() error {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.ImageWidth == 0 {
		o.ImageWidth = DefaultImageWidth
	}
	if o.ImageHeight == 0 {
		o.ImageHeight = DefaultImageHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Config != nil {
		if err := o.Config.Validate(); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// StudConfig returns the effective stud configuration.
func (o *Options) StudConfig() stud.Config {
	if o.Config != nil {
		return *o.Config
	}
	return stud.Default()
}

// PuzzleKeyOpts returns cache key options for puzzle generation.
func (o *Options) PuzzleKeyOpts() cache.PuzzleKeyOpts {
	cfgData, _ := json.Marshal(o.StudConfig())
	return cache.PuzzleKeyOpts{
		Rows:        o.Rows,
		Cols:        o.Cols,
		ImageWidth:  o.ImageWidth,
		ImageHeight: o.ImageHeight,
		Seed:        o.Seed,
		ConfigHash:  cache.Hash(cfgData),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Stroke:   o.Stroke,
		Fill:     o.Fill,
		Labels:   o.Labels,
		Exploded: o.Exploded,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}
