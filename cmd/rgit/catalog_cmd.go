package main

import (
	"github.com/spf13/cobra"

	"rgit/internal/command"
)

// catalogCmd exposes one catalog entry as a subcommand. The subcommand only
// rebuilds the argument sequence; resolution and execution happen in the
// dispatcher so unbound entries fail the same way everywhere.
func (a *app) catalogCmd(id command.Identifier) *cobra.Command {
	name := id.String()
	cmd := &cobra.Command{
		Use:   name,
		Short: id.Summary(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, rest []string) error {
			return a.run(cmd.Context(), append([]string{name}, rest...))
		},
	}
	if _, ok := a.dispatcher.Registry().Lookup(id); !ok {
		cmd.Short += " (not implemented)"
	}
	return cmd
}
