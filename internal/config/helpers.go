package config

import (
	"fmt"
	"strconv"
	"strings"
)

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Logging.Level == "debug" && c.Logging.Format == "console"
}

// IsReproducible returns true if generated data is seeded
func (c *Config) IsReproducible() bool {
	return c.Generator.Seed != 0
}

// ParseQueries parses a comma separated list of x values such as "0,10,25"
func ParseQueries(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	queries := make([]float64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		x, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid query value %q: %w", part, err)
		}
		queries = append(queries, x)
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("no query values in %q", s)
	}

	return queries, nil
}
