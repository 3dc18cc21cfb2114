package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rides/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string

	// v carries defaults, environment and the bound flags.
	v *viper.Viper
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"port":      "server.port",
	"db-driver": "db.driver",
	"db-path":   "db.path",
	"log-level": "log.level",
}

// NewRootCommand creates the root command for the rides CLI.
// Running it without a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:   "rides",
		Short: "Rides - ride record service",
		Long:  "An HTTP service for recording rides and querying them by id or page.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(opts.v, cmd.Flags())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigFile, "config", "c", "", "path to a YAML config file")
	flags.String("port", "8010", "HTTP listen port")
	flags.String("db-driver", config.DriverSQLite, "database driver (sqlite3|postgres)")
	flags.String("db-path", ":memory:", "SQLite database path")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

// loadConfig resolves the configuration for a command invocation.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.v, o.ConfigFile)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
