package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Request describes one slot of a batch plan: how many puzzles of a given
// format and difficulty to produce.
type Request struct {
	Format     Format
	Difficulty Difficulty
	Count      int
}

// BatchPlan is a validated batch plan file.
type BatchPlan struct {
	// Seed is the base random seed for the batch. Zero means the caller
	// should pick one (e.g. from the current time).
	Seed int64

	Requests []Request
}

// TotalCount returns the number of puzzles the plan asks for.
func (p *BatchPlan) TotalCount() int {
	total := 0
	for _, r := range p.Requests {
		total += r.Count
	}
	return total
}

// batchFile mirrors the HCL structure of a plan file:
//
//	seed = 42
//
//	puzzles {
//	  format     = "5x4"
//	  difficulty = "easy"
//	  count      = 3
//	}
type batchFile struct {
	Seed    *int64        `hcl:"seed,optional"`
	Puzzles []puzzleBlock `hcl:"puzzles,block"`
}

type puzzleBlock struct {
	Format     string `hcl:"format"`
	Difficulty string `hcl:"difficulty"`
	Count      int    `hcl:"count"`
}

// LoadBatchPlan parses and validates an HCL batch plan file. Format and
// difficulty values are checked up front so an unsupported request fails
// before any generation work starts.
func LoadBatchPlan(path string) (*BatchPlan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing batch plan %s: %w", path, diags)
	}
	var raw batchFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding batch plan %s: %w", path, diags)
	}
	return newBatchPlan(&raw)
}

// ParseBatchPlan is LoadBatchPlan for in-memory sources; filename is only
// used in diagnostics.
func ParseBatchPlan(src []byte, filename string) (*BatchPlan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing batch plan %s: %w", filename, diags)
	}
	var raw batchFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding batch plan %s: %w", filename, diags)
	}
	return newBatchPlan(&raw)
}

func newBatchPlan(raw *batchFile) (*BatchPlan, error) {
	plan := &BatchPlan{}
	if raw.Seed != nil {
		plan.Seed = *raw.Seed
	}
	if len(raw.Puzzles) == 0 {
		return nil, fmt.Errorf("batch plan has no puzzles blocks")
	}
	for i, block := range raw.Puzzles {
		format, err := ParseFormat(block.Format)
		if err != nil {
			return nil, fmt.Errorf("puzzles block %d: %w", i, err)
		}
		difficulty, err := ParseDifficulty(block.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("puzzles block %d: %w", i, err)
		}
		if block.Count <= 0 {
			return nil, fmt.Errorf("puzzles block %d: count must be positive, got %d", i, block.Count)
		}
		plan.Requests = append(plan.Requests, Request{
			Format:     format,
			Difficulty: difficulty,
			Count:      block.Count,
		})
	}
	return plan, nil
}
