package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "server",
		Short: "PlacementIQ API - college placement management backend",
		Long: `PlacementIQ tracks students, recruiting companies, placement drives and
job offers, and serves placement analytics over a JSON REST API.

Configuration is read from environment variables (JWT_SECRET_KEY is required).`,
		SilenceUsage: true,
		// Serve by default when no subcommand is given.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: LOG_LEVEL or info)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
