package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-dnsctl/internal/dns/common/log"
	"github.com/haukened/rr-dnsctl/internal/dns/config"
	"github.com/haukened/rr-dnsctl/internal/dns/gateways/api"
)

const (
	version = "0.1.0-dev"
	appName = "rr-dnsctl"
)

// cfg is loaded once in the root command's PersistentPreRunE and shared by
// every subcommand.
var cfg *config.AppConfig

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Manage zones and records on a DNS control-plane service",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		if err := log.Configure(loaded.Env, loaded.LogLevel); err != nil {
			return fmt.Errorf("logging configuration error: %w", err)
		}
		cfg = loaded
		return nil
	}

	cmd.AddCommand(newCmdZones())
	cmd.AddCommand(newCmdRecords())
	cmd.AddCommand(newCmdImport())
	return cmd
}

// buildClient constructs the control-plane client from the loaded config.
func buildClient() (*api.Client, error) {
	return api.NewClient(api.Options{
		Endpoint: cfg.Endpoint,
		Token:    cfg.Token,
		Logger:   log.GetLogger(),
	})
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
