package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"baseball-stats-service/internal/analysis"
	"baseball-stats-service/internal/dataset"
)

var (
	analyzeFile   string
	analyzeOut    string
	analyzePretty bool
	analyzeStrict bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "One-shot analysis of a batting CSV",
	Long: `Read a batting CSV, compute the full report (summary, league splits,
career aggregates, records), and write it as JSON to stdout or --out.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "baseball.csv", "path to the batting CSV")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write JSON to this file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "indent the JSON output")
	analyzeCmd.Flags().BoolVar(&analyzeStrict, "strict", true, "reject files missing core columns")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	f, err := os.Open(analyzeFile)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := dataset.Decode(f, dataset.Options{Strict: analyzeStrict, Source: analyzeFile})
	if err != nil {
		return fmt.Errorf("decode %s: %w", analyzeFile, err)
	}

	report, err := analysis.Run(ds, time.Now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeOut != "" {
		dst, err := os.Create(analyzeOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer dst.Close()
		out = dst
	}

	enc := json.NewEncoder(out)
	if analyzePretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
