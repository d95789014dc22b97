package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/config"
	"github.com/crossplay/xword/internal/output"
	"github.com/crossplay/xword/internal/solver"
)

var (
	solveInput   string
	solveVariant string
	solveOutput  string
	solveBudget  int
	solveHistory string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a crossword puzzle",
	Long: `Solve reads a grid and clue list (spec.md §6 Solving input shape) and
fills it using the chosen search variant.

Examples:
  # Solve with the default DFS variant
  xword solve --input puzzle.json

  # Solve with A*, capping expansion at 6000 iterations
  xword solve --input puzzle.json --variant astar --budget 6000`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "input puzzle JSON file (required)")
	solveCmd.Flags().StringVar(&solveVariant, "variant", "dfs", "search variant: dfs, astar, or hybrid")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "write JSON result to this file instead of stdout")
	solveCmd.Flags().IntVar(&solveBudget, "budget", 0, "A* iteration budget (0 uses the default)")
	solveCmd.Flags().StringVar(&solveHistory, "history-db", "", "sqlite path to record this run (default from config)")
	solveCmd.MarkFlagRequired("input")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	data, err := os.ReadFile(solveInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	in, err := output.ParseSolveInput(data)
	if err != nil {
		return err
	}

	_, dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	if closer, ok := dict.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	var res solver.Result
	switch solveVariant {
	case "dfs":
		res = solver.SolveDFS(dict, in)
	case "astar":
		res = solver.SolveAStar(dict, in, solveBudget)
	case "hybrid":
		res = solver.SolveHybrid(dict, in)
	default:
		return fmt.Errorf("unknown variant %q: want dfs, astar, or hybrid", solveVariant)
	}

	if res.Status == solver.StatusSuccess {
		color.Green("solved: %d/%d words placed in %.3fs", res.WordsPlaced, res.TotalWords, res.Metrics.ExecutionTimeSeconds)
	} else {
		color.Yellow("partial: %d/%d words placed in %.3fs", res.WordsPlaced, res.TotalWords, res.Metrics.ExecutionTimeSeconds)
	}

	historyPath := solveHistory
	if historyPath == "" {
		historyPath = cfg.MetricsDBPath
	}
	if h, err := solver.OpenHistory(historyPath); err == nil {
		defer h.Close()
		if err := h.Record(solveVariant, res); err != nil && verbosity > 0 {
			color.Yellow("warning: could not record history: %v", err)
		}
	} else if verbosity > 0 {
		color.Yellow("warning: could not open history db: %v", err)
	}

	out := output.FormatSolveResult(res)
	outData, err := out.ToJSON()
	if err != nil {
		return fmt.Errorf("format result: %w", err)
	}
	return writeOutput(outData, solveOutput)
}
