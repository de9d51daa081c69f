package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/framelink/pkg/buildinfo"
	"github.com/matzehuels/framelink/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Framelink keeps the member connectivity of 3-D frame models",
		Long: `Framelink reads structural frame models (columns, beams, bracing and friends),
works out which members meet at their ends or along their spans, and flags
members that cross or overlap without a junction.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetIOHooks(&logIOHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./framelink.toml if present)")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.crossingsCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
