package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
	pkgio "github.com/matzehuels/framelink/pkg/io"
)

// addOpts holds the command-line flags for the add command.
type addOpts struct {
	kind    string // member kind, e.g. "beam" or "VERTICAL-BRACING"
	start   string // start point as "x,y,z"
	end     string // end point as "x,y,z"
	name    string // member name (derived from the kind prefix if empty)
	id      int    // member ID (next free ID of the kind if zero)
	profile string // section profile
	output  string // output file (overwrite input if empty)
}

// addCommand creates the add command, which connects one new member.
func (c *CLI) addCommand() *cobra.Command {
	var opts addOpts

	cmd := &cobra.Command{
		Use:   "add <model>",
		Short: "Add a member and connect it to the frame",
		Long: `Add a member to a model file and record its junctions on both sides.

The stored adjacency of the existing members is trusted; run "build" first if
the file was edited by hand.

Examples:
  framelink add frame.yaml --kind column --start 0,0,0 --end 0,3,0
  framelink add frame.yaml --kind beam --start 0,3,0 --end 5,3,0 --name B10 --profile IPE300`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "member kind (column, beam, cantilever, vertical-bracing, ...)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start point as x,y,z")
	cmd.Flags().StringVar(&opts.end, "end", "", "end point as x,y,z")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "member name (default: kind prefix + next number)")
	cmd.Flags().IntVar(&opts.id, "id", 0, "member ID (default: next free ID of the kind)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "section profile")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// member builds the new member from the flags, deriving name and ID from m.
func (o *addOpts) member(m *frame.Model) (*frame.Member, error) {
	kind, err := frame.ParseKind(o.kind)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidKind, err, "--kind")
	}
	start, err := parsePoint(o.start)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "--start")
	}
	end, err := parsePoint(o.end)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "--end")
	}

	mem := &frame.Member{
		ID:      o.id,
		Name:    o.name,
		Kind:    kind,
		Start:   start,
		End:     end,
		Profile: o.profile,
		Meta:    frame.Metadata{},
	}
	if mem.Name == "" {
		id, name := m.NextName(kind)
		mem.Name = name
		if mem.ID == 0 {
			mem.ID = id
		}
	}
	if mem.ID == 0 {
		mem.ID = m.NextID(kind)
	}
	return mem, nil
}

func (c *CLI) runAdd(ctx context.Context, input string, opts *addOpts) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	m, err := pkgio.ImportModel(ctx, input)
	if err != nil {
		return err
	}
	mem, err := opts.member(m)
	if err != nil {
		return err
	}

	col, report := c.reporter(m.Name)
	out, err := e.Connect(m, mem, report)
	if err != nil {
		return err
	}
	output := outputPath(opts.output, input)
	if err := pkgio.ExportModel(ctx, out, output); err != nil {
		return err
	}

	added, _ := out.Lookup(mem.Name)
	printSuccess("Added %s %s", added.Kind, StyleValue.Render(added.Name))
	for _, l := range added.Links() {
		printDetail("%s %s", l.Role, l.Name)
	}
	if added.LinkCount() == 0 {
		printWarning("%s is not connected to anything", added.Name)
	}
	for _, p := range col.Pairs() {
		printWarning("%s", p)
	}
	printFile(output)
	return nil
}

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "remove <model> <member>",
		Short: "Remove a member and every reference to it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemove(cmd.Context(), args[0], args[1], outputPath(output, args[0]))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runRemove(ctx context.Context, input, name, output string) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	m, err := pkgio.ImportModel(ctx, input)
	if err != nil {
		return err
	}
	mem, ok := m.Lookup(name)
	if !ok {
		return ferrors.New(ferrors.ErrCodeNotFound, "member %q not in model %q", name, m.Name)
	}
	neighbours := mem.Links()

	out, err := e.Remove(m, mem.Kind, name)
	if err != nil {
		return err
	}
	if err := pkgio.ExportModel(ctx, out, output); err != nil {
		return err
	}

	printSuccess("Removed %s %s", mem.Kind, StyleValue.Render(name))
	for _, l := range neighbours {
		printDetail("unlinked %s", l.Name)
	}
	printFile(output)
	return nil
}

// parsePoint parses "x,y,z" into a point. Spaces around values are allowed.
func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Point{}, ferrors.New(ferrors.ErrCodeInvalidInput, "point %q: want x,y,z", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Point{}, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "point %q", s)
		}
		v[i] = f
	}
	return geom.Pt(v[0], v[1], v[2]), nil
}
