package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file; the extension picks the format
	detailed  bool   // show kind, profile and end points in node labels
	elevation bool   // pin nodes at member midpoints
	crossings bool   // draw crossing pairs as dashed edges
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "dot": true}

// renderCommand creates the render command for drawing the connectivity graph.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{crossings: true}

	cmd := &cobra.Command{
		Use:   "render <model>",
		Short: "Render the member connectivity graph",
		Long: `Render the connectivity graph of a model as SVG, PNG or Graphviz DOT.

Adjacency is rebuilt from geometry first. The output format follows the
extension of --output (default: <model>.svg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			if err := validateFormat(opts.output); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg, .png or .dot)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show kind, profile and end points")
	cmd.Flags().BoolVar(&opts.elevation, "elevation", false, "place nodes at member midpoints (X right, Y up)")
	cmd.Flags().BoolVar(&opts.crossings, "crossings", opts.crossings, "draw crossing pairs as dashed red edges")

	return cmd
}

// validateFormat checks the output extension against validFormats.
func validateFormat(output string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	if !validFormats[ext] {
		return ferrors.New(ferrors.ErrCodeInvalidFormat, "invalid output %q (must end in .svg, .png or .dot)", output)
	}
	return nil
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	m, col, err := c.loadBuilt(ctx, e, input)
	if err != nil {
		return err
	}

	dopts := nodelink.Options{Detailed: opts.detailed, Elevation: opts.elevation}
	if opts.crossings {
		dopts.Crossings = col.Pairs()
	}
	dot := nodelink.ToDOT(m, dopts)

	var data []byte
	switch strings.ToLower(filepath.Ext(opts.output)) {
	case ".dot":
		data = []byte(dot)
	case ".png":
		data, err = nodelink.RenderPNG(dot)
	default:
		data, err = nodelink.RenderSVG(dot)
	}
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err, "render %s", m.Name)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %s", m.Name))

	printSuccess("Rendered %s", StyleValue.Render(m.Name))
	printStats(m.Len(), junctions(m), col.Len())
	printFile(opts.output)
	return nil
}
