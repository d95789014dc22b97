// Package cmd implements the xword CLI: generate, solve, validate, and
// stats subcommands over the crossword engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "xword",
	Short: "Crossword puzzle generator and solver",
	Long: `xword builds and solves crossword puzzles from a dictionary of scored,
defined headwords.

It generates puzzles with a constructive seed-and-expand algorithm and
solves puzzles with a choice of DFS, A*, or hybrid search over the same
candidate-generation substrate.`,
	Version: version,
}

// Execute adds all child commands to the root command and runs it.
// Called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (only echoed at startup; settings are read from XWORD_* environment variables and .env)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func initConfig() {
	if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", cfgFile)
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Verbosity level: %d\n", verbosity)
	}
}
