package falsify

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/falsify/strategy"
)

// DefaultCases is the number of property cases run when no override is
// configured.
const DefaultCases = 10_000

// Config controls how the harness runs a property.
type Config struct {
	// Cases is the number of generated inputs the property runs against.
	Cases int `yaml:"cases"`

	// RecursionLimit bounds nested strategy recursion. Zero means
	// unbounded.
	RecursionLimit int `yaml:"recursion_limit"`

	// RejectionLimit bounds consecutive rejected draws for one case
	// before the harness aborts.
	RejectionLimit int `yaml:"rejection_limit"`

	// Seed fixes the random source for reproducible runs. Zero picks a
	// fresh seed, which the failure report echoes back.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used by Check.
func DefaultConfig() Config {
	return Config{
		Cases:          DefaultCases,
		RecursionLimit: math.MaxInt,
		RejectionLimit: strategy.MaxStrategyAttempts,
	}
}

// withDefaults fills unset fields so a zero or partially set Config is
// usable.
func (c Config) withDefaults() Config {
	if c.Cases == 0 {
		c.Cases = DefaultCases
	}
	if c.RecursionLimit == 0 {
		c.RecursionLimit = math.MaxInt
	}
	if c.RejectionLimit == 0 {
		c.RejectionLimit = strategy.MaxStrategyAttempts
	}
	return c
}

// validate rejects negative limits. Zero values are legal and mean "use
// the default".
func (c Config) validate() error {
	if c.Cases < 0 {
		return &ConfigError{Field: "cases", Reason: "must be at least 1"}
	}
	if c.RecursionLimit < 0 {
		return &ConfigError{Field: "recursion_limit", Reason: "must be at least 1"}
	}
	if c.RejectionLimit < 0 {
		return &ConfigError{Field: "rejection_limit", Reason: "must be at least 1"}
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Missing fields fall back to
// the defaults at run time, so a file may set only what it overrides.
func LoadConfig(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("falsify: reading config file: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return Config{}, fmt.Errorf("falsify: parsing config file: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
