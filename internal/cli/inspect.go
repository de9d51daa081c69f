package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framelink/pkg/crossing"
	"github.com/matzehuels/framelink/pkg/topology"
)

// crossingsCommand creates the crossings command.
func (c *CLI) crossingsCommand() *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "crossings <model>",
		Short: "List members that cross or overlap without a junction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCrossings(cmd.Context(), args[0], member)
		},
	}

	cmd.Flags().StringVarP(&member, "member", "m", "", "only list crossings involving this member")

	return cmd
}

func (c *CLI) runCrossings(ctx context.Context, input, member string) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	m, col, err := c.loadBuilt(ctx, e, input)
	if err != nil {
		return err
	}

	pairs := col.Pairs()
	if member != "" {
		pairs = col.Involves(member)
	}
	if len(pairs) == 0 {
		printSuccess("No crossings in %s", StyleValue.Render(m.Name))
		return nil
	}

	printWarning("%d crossings in %s", len(pairs), m.Name)
	for _, p := range pairs {
		printDetail("%s", crossing.Message(p.A, p.B, m.Name))
	}
	return nil
}

// componentsCommand creates the components command.
func (c *CLI) componentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components <model>",
		Short: "List connected sub-structures and floating members",
		Long: `List the connected sub-structures of a model after rebuilding its adjacency.

A sub-structure is grounded when one of its members has an end point at the
model's base elevation. Floating members usually point at a missing column or
a member that stops just short of its support.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runComponents(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runComponents(ctx context.Context, input string) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	m, _, err := c.loadBuilt(ctx, e, input)
	if err != nil {
		return err
	}

	g := topology.Build(m)
	comps := g.Components(m.BaseElevation, e.Grid)
	printKeyValue("model", m.Name)
	printKeyValue("members", strconv.Itoa(g.Len()))
	printKeyValue("junctions", strconv.Itoa(g.Edges()))
	printKeyValue("components", strconv.Itoa(len(comps)))

	for i, comp := range comps {
		printComponent(i, comp.Members, comp.Grounded)
	}

	if isolated := g.Isolated(); len(isolated) > 0 {
		printWarning("%d unconnected members", len(isolated))
		printDetail("%s", joinNames(isolated))
	}
	if floating := g.Floating(m.BaseElevation, e.Grid); len(floating) > 0 {
		printWarning("%d members not connected to the base", len(floating))
		printDetail("%s", joinNames(floating))
		return nil
	}
	printSuccess("Every member reaches the base")
	return nil
}
