package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/soltixdb/linreg/internal/analytics/generator"
	"github.com/soltixdb/linreg/internal/analytics/regression"
	"github.com/soltixdb/linreg/internal/config"
	"github.com/soltixdb/linreg/internal/logging"
	"github.com/soltixdb/linreg/internal/report"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file (default: ./linreg.yaml or ./configs/linreg.yaml)")
	points := flag.Int("points", 0, "Number of points to generate (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed for reproducible data (overrides config)")
	strategy := flag.String("strategy", "", fmt.Sprintf("Regression strategy %v (overrides config)", regression.List()))
	queries := flag.String("queries", "", "Comma separated x values to predict, e.g. 0,10,25 (overrides config)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := applyFlags(cfg, *points, *seed, *strategy, *queries); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)

	ctx := logging.WithRunID(logging.WithLogger(context.Background(), logger), "")

	if err := run(ctx, cfg); err != nil {
		logging.FromContext(ctx).Fatal("linreg failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx)

	reg, err := regression.New(cfg.Regression.Strategy, regression.Config{
		ParallelThreshold: cfg.Regression.ParallelThreshold,
		Workers:           cfg.Regression.Workers,
	})
	if err != nil {
		return err
	}

	opts := []generator.Option{
		generator.WithLine(cfg.Generator.Slope, cfg.Generator.Intercept),
		generator.WithNoise(cfg.Generator.Noise),
	}
	if cfg.IsReproducible() {
		opts = append(opts, generator.WithSeed(cfg.Generator.Seed))
	}

	data := generator.New(opts...).Generate(cfg.Generator.Points)
	logger.Debug("Generated data",
		"points", len(data),
		"seed", cfg.Generator.Seed,
		"slope", cfg.Generator.Slope,
		"intercept", cfg.Generator.Intercept,
	)

	_, err = report.New(reg).Run(ctx, data, cfg.Report.Queries, os.Stdout)
	return err
}

// applyFlags overrides config values with flags that were set
func applyFlags(cfg *config.Config, points int, seed uint64, strategy, queries string) error {
	if points != 0 {
		cfg.Generator.Points = points
	}
	if seed != 0 {
		cfg.Generator.Seed = seed
	}
	if strategy != "" {
		cfg.Regression.Strategy = strategy
	}
	if queries != "" {
		parsed, err := config.ParseQueries(queries)
		if err != nil {
			return err
		}
		cfg.Report.Queries = parsed
	}
	return cfg.Validate()
}
