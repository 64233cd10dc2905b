package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"baseball-stats-service/internal/dataset"
)

var (
	checkFile string
	checkJSON bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect a CSV before analysis",
	Long: `Explore a CSV without requiring the batting schema: shape, per-column
missing counts, distinct players/teams/leagues, and numeric summaries.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "baseball.csv", "path to the CSV")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the inspection as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(checkFile)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	insp, err := dataset.Inspect(data)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", checkFile, err)
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(insp)
	}

	fmt.Fprintf(out, "%s: %d rows x %d cols\n", checkFile, insp.Rows, insp.Cols)
	fmt.Fprintf(out, "columns: %v\n", insp.Columns)
	if insp.Players > 0 {
		fmt.Fprintf(out, "players: %d  teams: %d  leagues: %v\n", insp.Players, insp.Teams, insp.Leagues)
	}
	fmt.Fprintf(out, "missing cells: %d\n", insp.TotalMissing)

	cols := make([]string, 0, len(insp.Missing))
	for col, n := range insp.Missing {
		if n > 0 {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	for _, col := range cols {
		fmt.Fprintf(out, "  %-8s %d\n", col, insp.Missing[col])
	}

	if insp.Preview != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, insp.Preview)
	}
	return nil
}
