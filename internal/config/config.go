package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Regression RegressionConfig `mapstructure:"regression"`
	Report     ReportConfig     `mapstructure:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GeneratorConfig represents synthetic data generation settings
type GeneratorConfig struct {
	Points    int     `mapstructure:"points"`    // Number of points to generate (x = 1..points)
	Seed      uint64  `mapstructure:"seed"`      // 0 draws from the process-wide random source
	Slope     float64 `mapstructure:"slope"`     // Slope of the underlying line
	Intercept float64 `mapstructure:"intercept"` // Intercept of the underlying line
	Noise     float64 `mapstructure:"noise"`     // Width of the uniform noise band
}

// RegressionConfig represents fitting strategy settings
type RegressionConfig struct {
	Strategy          string `mapstructure:"strategy"`           // Registered strategy name: ols, gonum
	ParallelThreshold int    `mapstructure:"parallel_threshold"` // Minimum points before parallel summation (0 disables)
	Workers           int    `mapstructure:"workers"`            // Max concurrent summation workers
}

// ReportConfig represents report output settings
type ReportConfig struct {
	Queries []float64 `mapstructure:"queries"` // x values to predict y for
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator config: %w", err)
	}

	if err := c.Regression.Validate(); err != nil {
		return fmt.Errorf("regression config: %w", err)
	}

	if err := c.Report.Validate(); err != nil {
		return fmt.Errorf("report config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates generator configuration
func (c *GeneratorConfig) Validate() error {
	if c.Points < 1 {
		return fmt.Errorf("generator.points must be at least 1, got %d", c.Points)
	}

	if c.Noise < 0 {
		return fmt.Errorf("generator.noise cannot be negative")
	}

	return nil
}

// Validate validates regression configuration
func (c *RegressionConfig) Validate() error {
	if c.Strategy == "" {
		return fmt.Errorf("regression.strategy is required")
	}

	if c.ParallelThreshold < 0 {
		return fmt.Errorf("regression.parallel_threshold cannot be negative")
	}

	if c.Workers < 1 {
		return fmt.Errorf("regression.workers must be at least 1")
	}

	return nil
}

// Validate validates report configuration
func (c *ReportConfig) Validate() error {
	if len(c.Queries) == 0 {
		return fmt.Errorf("report.queries must contain at least one value")
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
