package config

import (
	"fmt"
	"os"

	"github.com/amdwit/rational"
	"github.com/amdwit/rational/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0"

	DefaultRoundMode    = "toZero"
	DefaultSignificants = 6
)

type Custom struct {
	Cache struct {
		Disabled  bool `toml:"disabled"`
		HighWater int  `toml:"high-water"`
		LowWater  int  `toml:"low-water"`
	} `toml:"cache"`
	Round struct {
		Mode         string `toml:"mode"`
		Places       int    `toml:"places"`
		Significants int    `toml:"significants"`
	} `toml:"round"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Custom {
	var config Custom
	config.applyDefaults()
	return &config
}

// Initialize reads a TOML file, fills in defaults for missing values
// and validates the result.
func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	err = config.validate()
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", file, err)
	}
	return &config, nil
}

func (c *Custom) applyDefaults() {
	if c.Cache.HighWater == 0 {
		c.Cache.HighWater = rational.DefaultHighWater
	}
	if c.Cache.LowWater == 0 {
		c.Cache.LowWater = min(rational.DefaultLowWater, c.Cache.HighWater)
	}
	if c.Round.Mode == "" {
		c.Round.Mode = DefaultRoundMode
	}
	if c.Round.Significants == 0 {
		c.Round.Significants = DefaultSignificants
	}
}

func (c *Custom) validate() error {
	if c.Cache.LowWater < 0 || c.Cache.LowWater > c.Cache.HighWater {
		return fmt.Errorf("cache low-water %d must be within [1, %d]", c.Cache.LowWater, c.Cache.HighWater)
	}
	if _, err := c.RoundingMode(); err != nil {
		return err
	}
	if c.Round.Significants < 1 {
		return fmt.Errorf("round significants %d must be positive", c.Round.Significants)
	}
	return nil
}

// RoundingMode parses the configured rounding mode.
func (c *Custom) RoundingMode() (rational.RoundingMode, error) {
	return rational.ParseRoundingMode(c.Round.Mode)
}

// NewFactory builds a factory interning into a cache with the configured
// bounds, or a non-interning factory when the cache is disabled.
func (c *Custom) NewFactory() (*rational.Factory, error) {
	if c.Cache.Disabled {
		return rational.NewFactory(nil), nil
	}
	cache, err := rational.NewCache(c.Cache.HighWater, c.Cache.LowWater)
	if err != nil {
		return nil, err
	}
	return rational.NewFactory(cache), nil
}

// SetupLogger applies the log section to the logger package.
func (c *Custom) SetupLogger() error {
	logger.SetLevel(c.Log.Level)
	logger.SetLimiter(c.Log.Limiter)
	return logger.SetFilter(c.Log.Filter)
}
