package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rides/internal/repository/sqlstore"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the Rides table DDL",
		Long: `Print the statement used to create the Rides table for the configured
database driver. The server applies it automatically at startup.

Example:
  rides schema --db-driver postgres`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}
			dialect, err := sqlstore.DialectFor(cfg.Database.Driver)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dialect.Schema())
			return err
		},
	}
}
