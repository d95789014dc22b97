package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/config"
	"github.com/crossplay/xword/internal/dictionary"
	"github.com/crossplay/xword/internal/grid"
)

var validateInput string

type solvedPuzzleFile struct {
	Grid  []string `json:"grid"`
	Clues struct {
		Across []solvedClue `json:"across"`
		Down   []solvedClue `json:"down"`
	} `json:"clues"`
}

type solvedClue struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Answer string `json:"answer"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Verify a solved puzzle's answers against their clues",
	Long: `Validate checks that every placed word in a solved puzzle file actually
names the dictionary entry its clue describes, catching mismatched
answer/clue pairs a search variant's fallback ladder can otherwise
leave behind.

Examples:
  xword validate --input solved.json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "solved puzzle JSON file (required)")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var puzzle solvedPuzzleFile
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return fmt.Errorf("decode puzzle: %w", err)
	}

	cfg := config.Load()
	idx, warnings := dictionary.LoadDirectory(cfg.DictionaryDir)
	for _, w := range warnings {
		if verbosity > 0 {
			color.Yellow("warning: %v", w)
		}
	}

	filled := make(map[dictionary.Key]string)
	clues := make(map[dictionary.Key]string)
	for _, c := range puzzle.Clues.Across {
		k := dictionary.Key{Number: c.Number, Direction: grid.Across.String()}
		filled[k] = c.Answer
		clues[k] = c.Clue
	}
	for _, c := range puzzle.Clues.Down {
		k := dictionary.Key{Number: c.Number, Direction: grid.Down.String()}
		filled[k] = c.Answer
		clues[k] = c.Clue
	}

	mismatches := idx.VerifySolution(filled, clues)
	if len(mismatches) == 0 {
		color.Green("valid: every answer matches its clue")
		return nil
	}

	color.Red("invalid: %d mismatch(es)", len(mismatches))
	for _, m := range mismatches {
		fmt.Printf("  %d %s: got %q, clue names %q\n", m.Number, m.Direction, m.Got, m.Expected)
	}
	os.Exit(1)
	return nil
}
