package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
)

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	output    string // output file (single format) or base path (multiple)
	cacheHit  bool
}

// writeArtifacts writes each rendered format to disk and prints a summary.
// With a single format and an explicit output path the artifact goes exactly
// there; otherwise paths are derived as base.format.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output)

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := p.output
		if len(p.formats) > 1 || path == "" || filepath.Ext(path) == "" {
			path = base + "." + format
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	return nil
}

// basePath strips a known format extension from the output path, defaulting
// to "puzzle" when no path was given.
func basePath(output string) string {
	if output == "" {
		return "puzzle"
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
