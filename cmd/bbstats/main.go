package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "dev"

var rootCmd = &cobra.Command{
	Use:   "bbstats",
	Short: "Batting statistics analysis service",
	Long: `bbstats ingests a batting CSV (Lahman layout), computes league splits,
career aggregates, and all-time records, and serves the results over HTTP.

Available commands:
  serve   - Run the HTTP service with periodic refresh
  analyze - One-shot analysis of a CSV to JSON
  check   - Inspect a CSV before analysis`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, analyzeCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
