package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framelink/pkg/connect"
	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	pkgio "github.com/matzehuels/framelink/pkg/io"
)

// buildCommand creates the build command, which recomputes all adjacency of
// a model file from its geometry.
func (c *CLI) buildCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <model>",
		Short: "Recompute member adjacency from geometry",
		Long: `Recompute the adjacency of every member from geometry and write the model.

Stored start/span/end sets are discarded. The model is written back in place
unless --output names another file; the format follows the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], outputPath(output, args[0]))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, input, output string) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	m, col, err := c.loadBuilt(ctx, e, input)
	if err != nil {
		return err
	}
	if err := pkgio.ExportModel(ctx, m, output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rebuilt %d members", m.Len()))

	printSuccess("Built %s", StyleValue.Render(m.Name))
	printStats(m.Len(), junctions(m), col.Len())
	printFile(output)
	if col.Len() > 0 {
		printNextStep("List crossings", appName+" crossings "+output)
	}
	return nil
}

// checkCommand creates the check command, which validates stored adjacency.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <model>",
		Short: "Validate stored adjacency against geometry",
		Long: `Validate the adjacency stored in a model file.

Every stored reference must be symmetric, point at an existing member and be
supported by the geometry. The stored sets are then compared with a fresh
rebuild; any difference is listed as +/- lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runCheck(ctx context.Context, input string) error {
	e, err := c.engine()
	if err != nil {
		return err
	}
	stored, err := pkgio.ImportModel(ctx, input)
	if err != nil {
		return err
	}

	printInfo("Checking %s", input)
	failed := false
	if err := e.Validate(stored); err != nil {
		var inv *ferrors.InvariantError
		if !errors.As(err, &inv) {
			return err
		}
		failed = true
		printError("%d adjacency problems in %s", len(inv.Problems), stored.Name)
		for _, p := range inv.Problems {
			printDetail("%s", p)
		}
	}

	col, report := c.reporter(stored.Name)
	built, err := e.Rebuild(stored, report)
	if err != nil {
		return err
	}
	if changes := connect.Diff(stored, built); len(changes) > 0 {
		failed = true
		printError("Stored adjacency differs from geometry (%d entries)", len(changes))
		for _, ch := range changes {
			printDetail("%s", ch)
		}
		printNextStep("Rewrite adjacency", appName+" build "+input)
	}

	if failed {
		return ferrors.New(ferrors.ErrCodeInvariant, "model %q failed adjacency check", stored.Name)
	}
	printSuccess("Adjacency of %s is consistent", StyleValue.Render(stored.Name))
	printStats(stored.Len(), junctions(stored), col.Len())
	return nil
}

// junctions counts connected member pairs.
func junctions(m *frame.Model) int {
	n := 0
	for _, mem := range m.All() {
		n += mem.LinkCount()
	}
	return n / 2
}
