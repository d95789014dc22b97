package cmd

import (
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/config"
	"github.com/crossplay/xword/internal/dictionary"
	"github.com/crossplay/xword/internal/generator"
	"github.com/crossplay/xword/internal/output"
	"github.com/crossplay/xword/internal/solver"
	"github.com/crossplay/xword/internal/store"
)

const densityRetryDefault = 15

var (
	genSize       int
	genDifficulty string
	genSeed       int64
	genOutput     string
	genSave       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new crossword puzzle",
	Long: `Generate builds a crossword grid of the requested size and difficulty
band using the constructive seed-and-expand algorithm, then derives clues
from the dictionary for every placed word.

Examples:
  # Generate a 13x13 medium puzzle to stdout
  xword generate --size 13 --difficulty medium

  # Generate and save a hard puzzle to a file
  xword generate --size 15 --difficulty hard --output hard.json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genSize, "size", "s", 0, "grid width and height (default from config)")
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "", "easy, medium, or hard (default from config)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "RNG seed for reproducible generation")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write JSON result to this file instead of stdout")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "persist the result to Postgres if XWORD_DATABASE_URL is set")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	size := genSize
	if size == 0 {
		size = cfg.DefaultSize
	}
	difficulty := genDifficulty
	if difficulty == "" {
		difficulty = cfg.DefaultDifficulty
	}

	idx, dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	if closer, ok := dict.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	if verbosity > 0 {
		fmt.Printf("Loaded %s headwords\n", humanize.Comma(int64(idx.Size())))
	}

	bar := pb.StartNew(densityRetryDefault)
	res, err := generator.Generate(dict, generator.Config{
		Width: size, Height: size,
		Difficulty: generator.Difficulty(difficulty),
		Seed:       genSeed,
		OnAttempt:  func() { bar.Increment() },
	})
	bar.Finish()
	if err != nil {
		color.Red("generation failed: %v", err)
		return err
	}

	if res.Fallback {
		color.Yellow("warning: density band not reached, using densest fallback puzzle (%.0f%% full)", res.Density*100)
	} else {
		color.Green("generated a %d-word puzzle at %.0f%% density", res.WordCount, res.Density*100)
	}

	out := output.FormatGenerateResult(res, generator.Difficulty(difficulty), size, idx.ClueForWord)
	data, err := out.ToJSON()
	if err != nil {
		return fmt.Errorf("format result: %w", err)
	}

	if genSave && cfg.PostgresURL != "" {
		s, err := store.NewPuzzleStore(cfg.PostgresURL)
		if err != nil {
			color.Yellow("warning: could not save to postgres: %v", err)
		} else {
			defer s.Close()
			if id, err := s.SavePuzzle(size, generator.Difficulty(difficulty), out); err != nil {
				color.Yellow("warning: could not save puzzle: %v", err)
			} else if verbosity > 0 {
				fmt.Printf("saved puzzle %s\n", id)
			}
		}
	}

	return writeOutput(data, genOutput)
}

func writeOutput(data []byte, path string) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// loadDictionary loads the dictionary index from cfg.DictionaryDir and
// wraps it in a Redis caching decorator if XWORD_REDIS_URL is set,
// returning both the plain index (for size/clue lookups the caching
// wrapper doesn't need) and the Dictionary the search/generator code
// should query through.
func loadDictionary(cfg *config.Config) (*dictionary.Index, solver.Dictionary, error) {
	idx, warnings := dictionary.LoadDirectory(cfg.DictionaryDir)
	for _, w := range warnings {
		if verbosity > 0 {
			color.Yellow("warning: %v", w)
		}
	}
	if idx.Size() == 0 {
		return nil, nil, fmt.Errorf("no dictionary entries loaded from %s", cfg.DictionaryDir)
	}

	if cfg.RedisURL == "" {
		return idx, idx, nil
	}

	cached, err := dictionary.NewCachingIndex(idx, cfg.RedisURL, "xword")
	if err != nil {
		color.Yellow("warning: redis cache unavailable, querying dictionary directly: %v", err)
		return idx, idx, nil
	}
	return idx, cached, nil
}
