// Package config defines the benchmark run parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config defines the top level configuration for a benchmark run.
type Config struct {
	// Samples is how many random numbers each suite generates.
	Samples int `mapstructure:"samples"`

	// MaxDigits32 caps the significant digits of 32-bit samples. The
	// single-width divisibility checks are exact up to 9 digits.
	MaxDigits32 int `mapstructure:"max-digits-32"`

	// MaxDigits64 caps the significant digits of 64-bit samples. The
	// eight-digit fast paths are exact up to 16 digits.
	MaxDigits64 int `mapstructure:"max-digits-64"`

	// MinDuration is the least wall time spent timing each candidate.
	MinDuration time.Duration `mapstructure:"min-duration"`

	Run32 bool `mapstructure:"run-32"`
	Run64 bool `mapstructure:"run-64"`

	Logging LoggerConfig `mapstructure:"logging"`
}

// DefaultConfig returns the parameters used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Samples:     100000,
		MaxDigits32: 8,
		MaxDigits64: 16,
		MinDuration: 1500 * time.Millisecond,
		Run32:       true,
		Run64:       true,
		Logging:     defaultLoggingConfig(),
	}
}

// Validate rejects parameters the kernels or the sample generator cannot
// honor.
func (c *Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.MaxDigits32 < 1 || c.MaxDigits32 > 9 {
		return fmt.Errorf("max-digits-32 must be in [1, 9], got %d", c.MaxDigits32)
	}
	if c.MaxDigits64 < 1 || c.MaxDigits64 > 16 {
		return fmt.Errorf("max-digits-64 must be in [1, 16], got %d", c.MaxDigits64)
	}
	if c.MinDuration <= 0 {
		return fmt.Errorf("min-duration must be positive, got %s", c.MinDuration)
	}
	if !c.Run32 && !c.Run64 {
		return errors.New("at least one of run-32 and run-64 must be enabled")
	}
	if err := c.Logging.validate(); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads the config file at path into vip. An empty path means no
// file is used and leaves vip untouched.
func LoadConfig(path string, vip *viper.Viper) error {
	if path == "" {
		return nil
	}
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return nil
}
