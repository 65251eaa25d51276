package bench

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Workload names accepted by Config.Workload.
const (
	WorkloadAscending = "ascending" // sequential ascending keys, worst-case insert order
	WorkloadRandom    = "random"    // uniform random inserts with interleaved searches
	WorkloadChurn     = "churn"     // steady-state delete/re-insert to exercise the pool
)

// ErrInvalidConfig is returned when a workload configuration fails validation.
var ErrInvalidConfig = errors.New("invalid bench config")

// Config describes one benchmark run. Each tree runs the same workload on its
// own goroutine; trees never share state.
type Config struct {
	Keys       int     `toml:"keys"`        // distinct keys per tree
	Trees      int     `toml:"trees"`       // independent tree instances
	Workload   string  `toml:"workload"`    // ascending | random | churn
	ValueSize  int     `toml:"value_size"`  // payload bytes per value
	ChurnRatio float64 `toml:"churn_ratio"` // fraction of ops that delete+reinsert (churn workload)
	WarmPool   bool    `toml:"warm_pool"`   // pre-warm the node pool before inserting
}

// DefaultConfig returns sensible defaults for a quick local run.
func DefaultConfig() Config {
	return Config{
		Keys:       10000,
		Trees:      1,
		Workload:   WorkloadRandom,
		ValueSize:  16,
		ChurnRatio: 0.25,
		WarmPool:   true,
	}
}

// LoadConfig reads a TOML file over the defaults, so partial files work.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if c.Keys <= 0 {
		return fmt.Errorf("%w: keys must be positive, got %d", ErrInvalidConfig, c.Keys)
	}
	if c.Trees <= 0 {
		return fmt.Errorf("%w: trees must be positive, got %d", ErrInvalidConfig, c.Trees)
	}
	if c.ValueSize < 0 {
		return fmt.Errorf("%w: value_size must not be negative, got %d", ErrInvalidConfig, c.ValueSize)
	}
	if c.ChurnRatio < 0 || c.ChurnRatio > 1 {
		return fmt.Errorf("%w: churn_ratio must be in [0,1], got %g", ErrInvalidConfig, c.ChurnRatio)
	}
	switch c.Workload {
	case WorkloadAscending, WorkloadRandom, WorkloadChurn:
		return nil
	default:
		return fmt.Errorf("%w: unknown workload %q", ErrInvalidConfig, c.Workload)
	}
}
