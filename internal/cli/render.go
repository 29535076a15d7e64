package cli

import (
	"context"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// renderCommand creates the render command for re-rendering saved puzzles.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		texture    string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [puzzle.json]",
		Short: "Re-render a saved puzzle document",
		Long: `Re-render a saved puzzle document.

The render command takes a puzzle.json file (produced by 'generate --doc')
and renders it to SVG, PNG, JSON, or DOT format. The document contains the
complete edge assignment and piece geometry, so rendering never
re-randomizes: the output always matches the original generation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}

			if texture != "" {
				img, err := gg.LoadImage(texture)
				if err != nil {
					return fmt.Errorf("load texture %s: %w", texture, err)
				}
				opts.Texture = img
			}

			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&texture, "texture", "", "source image to cut through the pieces (png output)")
	cmd.Flags().StringVar(&opts.Stroke, "stroke", "", "contour stroke color")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label each piece with its ID (svg)")
	cmd.Flags().BoolVar(&opts.Fill, "fill", false, "flat-fill pieces (svg)")
	cmd.Flags().Float64Var(&opts.Exploded, "exploded", 0, "gap between pieces for exploded view (svg)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "pixels per image unit (png)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label edges with polarity (dot)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the puzzle document and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	p, err := puzzle.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load puzzle %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, p, "", opts)
	spinner.Stop()
	if err != nil {
		printError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}

	printSuccess("Rendered %dx%d puzzle", p.Rows, p.Cols)
	if output == "" {
		output = basePath(input)
	}
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		output:    output,
		cacheHit:  cacheHit,
	})
}
