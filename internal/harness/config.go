package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRows and DefaultCols form the default benchmark grid.
// 100000×10000 does not fit in laptop memory, so the grid stops at 50000×5000.
var (
	DefaultRows = []int{5000, 10000, 20000, 50000}
	DefaultCols = []int{500, 1000, 2000, 5000}
)

// DefaultSeed seeds the generator when no seed is configured.
const DefaultSeed uint64 = 1

// Config defines the benchmark grid.
type Config struct {
	// Rows lists the observation counts n to benchmark.
	Rows []int `yaml:"rows"`

	// Cols lists the predictor counts m to benchmark.
	Cols []int `yaml:"cols"`

	// Seed seeds the random data generator.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the default grid with the default seed.
func DefaultConfig() Config {
	return Config{
		Rows: append([]int(nil), DefaultRows...),
		Cols: append([]int(nil), DefaultCols...),
		Seed: DefaultSeed,
	}
}

// Pairs returns the number of (rows, cols) combinations in the grid.
func (c Config) Pairs() int {
	return len(c.Rows) * len(c.Cols)
}

// Validate checks that the grid is non-empty and every size is positive.
func (c Config) Validate() error {
	if len(c.Rows) == 0 {
		return fmt.Errorf("rows list is required and must be non-empty")
	}
	if len(c.Cols) == 0 {
		return fmt.Errorf("cols list is required and must be non-empty")
	}
	for i, n := range c.Rows {
		if n < 1 {
			return fmt.Errorf("rows[%d]: must be >= 1, got %d", i, n)
		}
	}
	for i, m := range c.Cols {
		if m < 1 {
			return fmt.Errorf("cols[%d]: must be >= 1, got %d", i, m)
		}
	}
	return nil
}

// LoadConfig reads a benchmark config YAML file. Keys missing from the file
// keep their DefaultConfig values.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields (typos), or describes an invalid grid.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark config: %w", err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark config: %w", err)
	}

	return &cfg, nil
}
