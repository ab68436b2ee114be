package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("linreg")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")         // Current directory
		v.AddConfigPath("./configs") // Project configs directory
	}

	// Set defaults
	setDefaults(v)

	// Enable environment variable overrides, e.g. LINREG_GENERATOR_POINTS
	v.SetEnvPrefix("LINREG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	// Generator defaults
	v.SetDefault("generator.points", d.Generator.Points)
	v.SetDefault("generator.seed", d.Generator.Seed)
	v.SetDefault("generator.slope", d.Generator.Slope)
	v.SetDefault("generator.intercept", d.Generator.Intercept)
	v.SetDefault("generator.noise", d.Generator.Noise)

	// Regression defaults
	v.SetDefault("regression.strategy", d.Regression.Strategy)
	v.SetDefault("regression.parallel_threshold", d.Regression.ParallelThreshold)
	v.SetDefault("regression.workers", d.Regression.Workers)

	// Report defaults
	v.SetDefault("report.queries", d.Report.Queries)

	// Logging defaults
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_path", d.Logging.OutputPath)
	v.SetDefault("logging.time_format", d.Logging.TimeFormat)
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from file or returns default config
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		// Return default configuration
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Points:    20,
			Seed:      0,
			Slope:     2,
			Intercept: 5,
			Noise:     12,
		},
		Regression: RegressionConfig{
			Strategy:          "ols",
			ParallelThreshold: 0,
			Workers:           4,
		},
		Report: ReportConfig{
			Queries: []float64{0, 10, 25},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
			TimeFormat: "RFC3339",
		},
	}
}
