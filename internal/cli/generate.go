package cli

import (
	"context"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// generateCommand creates the generate command, the main entry point for
// producing a puzzle from scratch.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		docPath    string
		profile    string
		texture    string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a jigsaw cut pattern",
		Long: `Generate a jigsaw cut pattern.

The generate command partitions an image frame into a rows x cols grid,
randomly assigns complementary tabs and indents to every internal edge, and
renders the resulting piece contours.

The same seed always produces the same puzzle, and results are cached
locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}

			cfg, err := loadStudConfig(profile)
			if err != nil {
				return fmt.Errorf("load profile %s: %w", profile, err)
			}
			opts.Config = cfg

			if texture != "" {
				img, err := gg.LoadImage(texture)
				if err != nil {
					return fmt.Errorf("load texture %s: %w", texture, err)
				}
				opts.Texture = img
			}

			return c.runGenerate(cmd.Context(), opts, output, docPath, noCache)
		},
	}

	// Grid flags
	cmd.Flags().IntVarP(&opts.Rows, "rows", "r", pipeline.DefaultRows, "grid rows")
	cmd.Flags().IntVarP(&opts.Cols, "cols", "c", pipeline.DefaultCols, "grid columns")
	cmd.Flags().Float64Var(&opts.ImageWidth, "width", pipeline.DefaultImageWidth, "image frame width")
	cmd.Flags().Float64Var(&opts.ImageHeight, "height", pipeline.DefaultImageHeight, "image frame height")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", pipeline.DefaultSeed, "random seed for reproducible edges")
	cmd.Flags().StringVar(&profile, "profile", "", "TOML stud profile file")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&docPath, "doc", "", "also write the puzzle document to this path")
	cmd.Flags().StringVar(&texture, "texture", "", "source image to cut through the pieces (png output)")
	cmd.Flags().StringVar(&opts.Stroke, "stroke", "", "contour stroke color")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label each piece with its ID (svg)")
	cmd.Flags().BoolVar(&opts.Fill, "fill", false, "flat-fill pieces (svg)")
	cmd.Flags().Float64Var(&opts.Exploded, "exploded", 0, "gap between pieces for exploded view (svg)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "pixels per image unit (png)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label edges with polarity (dot)")

	// Cache flags
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "regenerate even if cached")

	return cmd
}

// runGenerate executes the full pipeline and writes the results.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output, docPath string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %dx%d puzzle...", opts.Rows, opts.Cols))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		printError("Generation failed")
		return err
	}

	printSuccess("Generated %dx%d puzzle (seed %d)", result.Puzzle.Rows, result.Puzzle.Cols, result.Puzzle.Seed)
	printStats(result.Stats.PieceCount, result.Stats.InternalEdges, result.CacheInfo.GenerateHit)

	if docPath != "" {
		if err := puzzle.WriteFile(result.Puzzle, docPath); err != nil {
			return err
		}
		printFile(docPath)
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	if docPath != "" {
		printNextStep("Inspect pieces", fmt.Sprintf("puzzlecut inspect %s", docPath))
	}
	return nil
}
