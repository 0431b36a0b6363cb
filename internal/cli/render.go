package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edenso/boardkit/pkg/boardio"
	"github.com/edenso/boardkit/pkg/cache"
	"github.com/edenso/boardkit/pkg/render/export"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "dot", "svg", "png"
	detailed bool     // include node ids and dimensions in labels
	noCache  bool     // skip the render artifact cache
}

// renderCommand creates the render command for exporting board diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [board.json]",
		Short: "Render a board as a node-link diagram",
		Long: `Render a board as a node-link diagram.

Nodes become boxes labeled with their title, edges become arrows. The
diagram uses Graphviz layout rather than the board's canvas positions,
so the structure stays readable regardless of how the canvas looks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node ids and dimensions in labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
		}
	}
	return nil
}

// runRender loads the board and writes one output file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	b, err := boardio.ImportFile(input)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}

	dot := export.ToDOT(b, export.Options{Detailed: opts.detailed})
	base := basePath(opts.output, input)

	artifacts, err := newRenderCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize render cache: %w", err)
	}
	defer artifacts.Close()

	for _, format := range opts.formats {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		outputPath := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			outputPath = opts.output
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
		spinner.Start()
		data, err := renderCached(ctx, artifacts, dot, format)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		spinner.Stop()

		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}

	printSuccess("Render complete")
	printStats(len(b.Nodes), len(b.Edges))

	return nil
}

// renderCached produces the bytes for a single output format, consulting the
// artifact cache first. DOT output is the cache key itself and skips the
// cache entirely.
func renderCached(ctx context.Context, artifacts cache.Cache, dot, format string) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}

	key := cache.RenderKey(dot, format)
	if data, ok, err := artifacts.Get(ctx, key); err == nil && ok {
		return data, nil
	}

	data, err := renderFormat(dot, format)
	if err != nil {
		return nil, err
	}
	// Cache write failures never fail the render.
	_ = artifacts.Set(ctx, key, data, renderCacheTTL)
	return data, nil
}

// renderCacheTTL bounds how long rendered artifacts are kept.
const renderCacheTTL = 30 * 24 * time.Hour

// renderFormat produces the bytes for a single output format.
func renderFormat(dot, format string) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return export.RenderSVG(dot)
	case formatPNG:
		return export.RenderPNG(dot)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// basePath returns the output base path: the explicit --output value without
// its extension, or the input path without its extension.
func basePath(output, input string) string {
	path := input
	if output != "" {
		path = output
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
