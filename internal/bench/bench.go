// Package bench runs synthetic workloads against the red-black tree map and
// reports per-tree results. Trees run in parallel across goroutines, but each
// tree is owned by exactly one goroutine, honoring the map's single-writer
// contract.
package bench

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/monforje/treemap/internal/rbtree"
)

// Result captures one tree's run.
type Result struct {
	Tree     int
	Inserts  int
	Deletes  int
	Searches int
	Elapsed  time.Duration
	Stats    rbtree.Stats
}

// Run executes the configured workload on cfg.Trees independent trees and
// returns one Result per tree, indexed by tree number.
func Run(cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, cfg.Trees)
	var g errgroup.Group
	for i := 0; i < cfg.Trees; i++ {
		g.Go(func() error {
			r, err := runOne(cfg, i)
			if err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(cfg Config, treeID int) (Result, error) {
	tr := rbtree.New[string]()
	if cfg.WarmPool {
		tr.Reserve(cfg.Keys)
	}

	value := strings.Repeat("v", cfg.ValueSize)
	rng := rand.New(rand.NewPCG(uint64(treeID)+1, uint64(cfg.Keys)))

	r := Result{Tree: treeID}
	start := time.Now()

	switch cfg.Workload {
	case WorkloadAscending:
		for i := 0; i < cfg.Keys; i++ {
			if err := tr.Insert(benchKey(i), value); err != nil {
				return r, err
			}
			r.Inserts++
		}

	case WorkloadRandom:
		for i := 0; i < cfg.Keys; i++ {
			if err := tr.Insert(benchKey(rng.IntN(cfg.Keys)), value); err != nil {
				return r, err
			}
			r.Inserts++
			tr.Search(benchKey(rng.IntN(cfg.Keys)))
			r.Searches++
		}

	case WorkloadChurn:
		for i := 0; i < cfg.Keys; i++ {
			if err := tr.Insert(benchKey(i), value); err != nil {
				return r, err
			}
			r.Inserts++
		}
		churnOps := int(float64(cfg.Keys) * cfg.ChurnRatio)
		for i := 0; i < churnOps; i++ {
			key := benchKey(rng.IntN(cfg.Keys))
			if tr.Delete(key) {
				r.Deletes++
			}
			if err := tr.Insert(key, value); err != nil {
				return r, err
			}
			r.Inserts++
		}
	}

	r.Elapsed = time.Since(start)
	r.Stats = tr.Stats()
	return r, nil
}

func benchKey(i int) string {
	return fmt.Sprintf("key%010d", i)
}
