// Package cli holds the saunactl operator commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds a fresh command tree so tests can run it in isolation.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "saunactl",
		Short: "Operator tool for the sauna reservation service",
		Long: `saunactl applies database migrations and answers scheduling questions
without starting the HTTP server.`,
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCommand())
	root.AddCommand(newClubSaunaCommand())
	return root
}
