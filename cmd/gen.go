package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/generator"
	"github.com/spf13/cobra"
)

var (
	genFormat     string
	genDifficulty string
	genNumber     int
	genSeed       int64
	genOutput     string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Suguru puzzles",
		Long: `Generate one or more Suguru puzzles of a given format and difficulty.

Examples:
  suguru gen --format 5x4 --difficulty easy
  suguru gen -f 11x9 -d hard -n 5
  suguru gen -f 5x9 -d medium --seed 42 -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&genFormat, "format", "f", "5x4", "Puzzle format, e.g. 5x4, 5x9, 11x4, 11x9")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "easy", "Difficulty: easy, medium, hard")
	genCmd.Flags().IntVarP(&genNumber, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (e.g. puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(genFormat)
	if err != nil {
		return err
	}
	difficulty, err := config.ParseDifficulty(genDifficulty)
	if err != nil {
		return err
	}
	if genNumber < 1 {
		return fmt.Errorf("number of puzzles must be positive, got %d", genNumber)
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	puzzles := make([]*generator.Puzzle, 0, genNumber)
	for i := 0; i < genNumber; i++ {
		gen, err := generator.New(generator.Options{
			Format:     format,
			Difficulty: difficulty,
			Seed:       seed + int64(i),
		})
		if err != nil {
			return err
		}
		p, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		puzzles = append(puzzles, p)
	}

	if genOutput != "" {
		filename := genOutput
		if filepath.Ext(filename) != ".html" {
			filename += ".html"
		}
		if err := writeHTML(filename, puzzles); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", len(puzzles), filename)
		return nil
	}

	for i, p := range puzzles {
		fmt.Printf("Puzzle #%d (%s, %s, %d clues):\n",
			i+1, format, difficulty, p.ClueCount())
		fmt.Println(strings.TrimRight(p.Format(), "\n"))
		fmt.Println("\nRegions:")
		fmt.Println(strings.TrimRight(p.FormatRegions(), "\n"))
		fmt.Println("\nSolution:")
		fmt.Println(strings.TrimRight(p.FormatSolution(), "\n"))
		fmt.Println()
	}
	return nil
}
