package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/config"
	"github.com/crossplay/xword/internal/solver"
)

var statsDB string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display solve run history",
	Long: `Display aggregate statistics recorded by past "xword solve" runs:
success rate, average execution time, and fallback/mode-switch counts
per search variant.

Examples:
  xword stats
  xword stats --db /path/to/xword_metrics.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDB, "db", "d", "", "path to metrics database (default from config)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := statsDB
	if dbPath == "" {
		dbPath = config.Load().MetricsDBPath
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("metrics database not found at %s", dbPath)
	}

	h, err := solver.OpenHistory(dbPath)
	if err != nil {
		return fmt.Errorf("open metrics database: %w", err)
	}
	defer h.Close()

	summaries, err := h.Summarize()
	if err != nil {
		return err
	}

	fmt.Printf("\nSolve Run History\n")
	fmt.Printf("=================\n")
	fmt.Printf("Database: %s\n\n", dbPath)

	if len(summaries) == 0 {
		fmt.Println("  No recorded runs found")
		return nil
	}

	for _, s := range summaries {
		fmt.Printf("%-8s runs=%-5d success=%.0f%% avg_time=%.3fs avg_placed=%.1f fallbacks=%d mode_switches=%d\n",
			s.Variant, s.Runs, s.SuccessRate*100, s.AvgExecSeconds, s.AvgWordsPlaced, s.TotalFallbacks, s.TotalModeSwitch)
	}

	return nil
}
