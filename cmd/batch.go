package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
	"github.com/EmirMurat6606/SuguruMeister/internal/generator"
	"github.com/spf13/cobra"
)

var (
	batchPlanFile string
	batchOutput   string
	batchWorkers  int
)

func init() {
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a booklet of puzzles from a plan file",
		Long: `Generate all puzzles described by an HCL plan file and combine them into
one printable HTML booklet. A plan file looks like:

  seed = 42

  puzzles {
    format     = "5x4"
    difficulty = "easy"
    count      = 3
  }

  puzzles {
    format     = "11x9"
    difficulty = "hard"
    count      = 2
  }`,
		RunE: runBatch,
	}

	batchCmd.Flags().StringVarP(&batchPlanFile, "plan", "p", "", "Batch plan file (HCL)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "puzzles.html", "Output HTML file")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Worker count (0 = number of CPUs)")
	_ = batchCmd.MarkFlagRequired("plan")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	plan, err := config.LoadBatchPlan(batchPlanFile)
	if err != nil {
		return err
	}

	seed := plan.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	slog.Info("starting batch generation",
		"puzzles", plan.TotalCount(), "requests", len(plan.Requests), "seed", seed)

	puzzles, err := generator.Batch(plan, seed, batchWorkers, slog.Default())
	if err != nil {
		return fmt.Errorf("batch generation failed: %w", err)
	}

	filename := batchOutput
	if filepath.Ext(filename) != ".html" {
		filename += ".html"
	}
	if err := writeHTML(filename, puzzles); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	slog.Info("batch complete",
		"puzzles", len(puzzles), "output", filename, "elapsed", time.Since(start))
	return nil
}
