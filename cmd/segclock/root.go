package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "segclock",
	Short: "segclock simulates a multiplexed seven-segment clock.",
	Long: `segclock simulates a digital clock that drives a time-division ` +
		`multiplexed seven-segment display. It runs the counter chain and ` +
		`the display multiplexer on a shared discrete time base, records ` +
		`sampled display frames to SQLite, and can expose a live monitor.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can predefine SEGCLOCK_* defaults; its absence is fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
