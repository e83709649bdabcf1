package generator

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/EmirMurat6606/SuguruMeister/internal/config"
)

// Batch generates every puzzle a plan asks for, fanning the work out over a
// bounded worker pool. Puzzle i (in plan order) always derives its seed as
// baseSeed+i, so the output is deterministic regardless of worker
// scheduling. Workers share no mutable state; each job owns its Generator.
//
// The returned puzzles are in plan order. The first failing job's error is
// returned, with the remaining work abandoned once the pool drains.
func Batch(plan *config.BatchPlan, baseSeed int64, workers int, logger *slog.Logger) ([]*Puzzle, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type job struct {
		index int
		req   config.Request
		seed  int64
	}

	jobs := make([]job, 0, plan.TotalCount())
	for _, req := range plan.Requests {
		for i := 0; i < req.Count; i++ {
			jobs = append(jobs, job{
				index: len(jobs),
				req:   req,
				seed:  baseSeed + int64(len(jobs)),
			})
		}
	}

	puzzles := make([]*Puzzle, len(jobs))
	errs := make([]error, len(jobs))

	queue := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				gen, err := New(Options{
					Format:     j.req.Format,
					Difficulty: j.req.Difficulty,
					Seed:       j.seed,
					Logger:     logger,
				})
				if err != nil {
					errs[j.index] = err
					continue
				}
				p, err := gen.Generate()
				if err != nil {
					errs[j.index] = err
					continue
				}
				puzzles[j.index] = p
				logger.Debug("batch puzzle done",
					"index", j.index,
					"format", j.req.Format.String(),
					"difficulty", j.req.Difficulty.String(),
					"clues", p.ClueCount())
			}
		}()
	}

	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("batch puzzle %d (%s %s): %w",
				i, jobs[i].req.Format, jobs[i].req.Difficulty, err)
		}
	}
	return puzzles, nil
}
