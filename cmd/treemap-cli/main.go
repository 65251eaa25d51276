package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/monforje/treemap/internal/bench"
	"github.com/monforje/treemap/internal/rbtree"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "bench":
		benchCmd()
	case "stats":
		statsCmd()
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`treemap CLI - Pooled Red-Black String Map

Usage:
  treemap-cli <command> [options]

Commands:
  bench       Run a synthetic workload and report per-tree results
  stats       Run a quick workload and print the full statistics snapshot
  help        Show this help

Examples:
  treemap-cli bench -keys 100000 -workload ascending
  treemap-cli bench -config bench.toml -trees 4
  treemap-cli stats -keys 50000`)
}

func benchCmd() {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file (flags override)")
	keys := fs.Int("keys", 0, "Distinct keys per tree")
	trees := fs.Int("trees", 0, "Independent tree instances")
	workload := fs.String("workload", "", "Workload: ascending, random, churn")

	fs.Parse(os.Args[2:])

	cfg := bench.DefaultConfig()
	if *configPath != "" {
		loaded, err := bench.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *keys > 0 {
		cfg.Keys = *keys
	}
	if *trees > 0 {
		cfg.Trees = *trees
	}
	if *workload != "" {
		cfg.Workload = *workload
	}

	results, err := bench.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bench failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Workload %s: %d keys x %d tree(s)\n", cfg.Workload, cfg.Keys, cfg.Trees)
	fmt.Println(strings.Repeat("-", 60))
	for _, r := range results {
		opsPerSec := float64(r.Inserts+r.Deletes+r.Searches) / r.Elapsed.Seconds()
		fmt.Printf("tree=%d | inserts=%d deletes=%d searches=%d | %.0f ops/s | height=%d valid=%v\n",
			r.Tree, r.Inserts, r.Deletes, r.Searches, opsPerSec, r.Stats.Height, r.Stats.Valid)
	}
}

func statsCmd() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	keys := fs.Int("keys", 10000, "Keys to insert before the snapshot")

	fs.Parse(os.Args[2:])

	tr := rbtree.New[int]()
	tr.Reserve(*keys)
	for i := 0; i < *keys; i++ {
		if err := tr.Insert(fmt.Sprintf("key%010d", i), i); err != nil {
			fmt.Fprintf(os.Stderr, "Insert failed: %v\n", err)
			os.Exit(1)
		}
	}
	for i := 0; i < *keys/10; i++ {
		tr.Search(fmt.Sprintf("key%010d", i*10))
	}

	printStats(tr.Stats())
}

func printStats(s rbtree.Stats) {
	fmt.Println("Tree statistics:")
	fmt.Printf("  size             %d\n", s.Size)
	fmt.Printf("  height           %d\n", s.Height)
	fmt.Printf("  black height     %d\n", s.BlackHeight)
	fmt.Printf("  valid            %v\n", s.Valid)
	fmt.Printf("  rotations        %d\n", s.Rotations)
	fmt.Printf("  searches         %d\n", s.Searches)
	fmt.Printf("  max depth        %d\n", s.MaxDepth)
	fmt.Printf("  avg search depth %.2f\n", s.AvgSearchDepth)
	fmt.Printf("  pool size        %d\n", s.PoolSize)
	fmt.Printf("  pool reuse       %.2f\n", s.PoolReuseRatio)
	fmt.Printf("  balance factor   %.2f\n", s.BalanceFactor)
}
