// Package cmd provides CLI commands for finance-page.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/finance-page/pkg/config"
)

var (
	cfgFile string
	debug   bool
	locale  string

	// logLevel is shared by the default logger so configuration loaded later
	// can still raise verbosity.
	logLevel = new(slog.LevelVar)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "finance-page",
	Short: "Work with the finance tracker's transactions page from a terminal",
	Long: `finance-page drives the finance tracker's transactions page
the way its browser script does, against the tracker's HTTP interface.

It supports:
- Listing transactions fetched from /api/transactions
- Adding a transaction, blocked while description or amount is empty
- Deleting a transaction after confirmation

Example:
  finance-page list
  finance-page add --description Coffee --amount 4.5 --category Food
  finance-page delete 3`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel.Set(slog.LevelInfo)
		if debug || os.Getenv("DEBUG") == "true" {
			logLevel.Set(slog.LevelDebug)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "date locale, e.g. pt-BR (overrides FINANCE_LOCALE)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
}

// applyLogLevel raises the log level to debug when the loaded configuration
// asks for it, e.g. DEBUG=true in the .env file.
func applyLogLevel(cfg *config.Config) {
	if cfg.Debug {
		logLevel.Set(slog.LevelDebug)
	}
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
