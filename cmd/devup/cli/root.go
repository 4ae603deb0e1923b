// Package cli implements the devup command-line interface using Cobra.
// It provides one subcommand per supported development service plus
// housekeeping commands for listing and removing managed containers.
package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devupkit/devup/internal/config"
	"github.com/devupkit/devup/internal/log"
	"github.com/devupkit/devup/internal/ui"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "devup",
	Short: "devup - preconfigured local development containers",
	Long: `devup starts preconfigured development service containers
(Postgres, TimescaleDB, RabbitMQ, Redis, Scylla, NATS, Zookeeper, Kafka)
on the local Docker daemon, waits for each to report healthy, and prints
its assigned network address.

Containers are attached to a shared attachable network (default cont_net)
so they can reach each other by hostname.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		globalCfg, _ := config.LoadGlobal()
		debugDir := filepath.Join(config.GlobalConfigDir(), "debug")

		if err := log.Init(log.Options{
			Verbose:       verbose,
			JSONFormat:    jsonOut,
			DebugDir:      debugDir,
			RetentionDays: globalCfg.Debug.RetentionDays,
		}); err != nil {
			// Log init failure is non-fatal - fall back to the default logger
			ui.Warnf("failed to initialize debug logging: %v", err)
		}
		return nil
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	defer log.Close()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "log in JSON format")
}
