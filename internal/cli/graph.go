package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
	"github.com/puzzlecut/puzzlecut/pkg/render/adjacency"
)

// graphCommand creates the graph command for adjacency diagrams.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [puzzle.json]",
		Short: "Render a puzzle's neighbor graph",
		Long: `Render a puzzle's neighbor graph as a node-link diagram.

Each piece becomes a node at its grid position and each internal edge
becomes a link. With --detailed, links are labeled with the tab/indent
polarity seen from the top/left piece, which makes it easy to verify
that facing sides always disagree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, derived for svg/png)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label edges with polarity")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, input, format, output string, detailed bool) error {
	p, err := puzzle.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load puzzle %s: %w", input, err)
	}

	opts := pipeline.Options{Detailed: detailed, Formats: []string{pipeline.FormatDOT}}
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	artifacts, err := runner.Render(ctx, p, opts)
	if err != nil {
		return err
	}
	dot := string(artifacts[pipeline.FormatDOT])

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = adjacency.RenderSVG(ctx, dot)
	case "png":
		data, err = adjacency.RenderPNG(ctx, dot)
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", format)
	}
	if err != nil {
		return fmt.Errorf("render graph: %w", err)
	}

	if output == "" && format != "dot" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "_graph." + format
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if output != "" {
		printFile(output)
	}
	return nil
}
