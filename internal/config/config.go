package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	RecomputeWorkerCount int
	RecomputeQueueSize   int
	RecomputeConcurrency int
	TuningPath           string
	MetricsEnabled       bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:exampilot.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		RecomputeWorkerCount: envIntOr("RECOMPUTE_WORKER_COUNT", 2),
		RecomputeQueueSize:   envIntOr("RECOMPUTE_QUEUE_SIZE", 64),
		RecomputeConcurrency: envIntOr("RECOMPUTE_CONCURRENCY", 4),
		TuningPath:           envOr("TUNING_PATH", ""),
		MetricsEnabled:       envBoolOr("METRICS_ENABLED", true),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
		c.LogLevel = strings.ToUpper(c.LogLevel)
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	if c.RecomputeWorkerCount < 1 {
		problems = append(problems, fmt.Sprintf("RECOMPUTE_WORKER_COUNT must be at least 1 (got %d)", c.RecomputeWorkerCount))
	}
	if c.RecomputeQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("RECOMPUTE_QUEUE_SIZE must be at least 1 (got %d)", c.RecomputeQueueSize))
	}
	if c.RecomputeConcurrency < 1 {
		problems = append(problems, fmt.Sprintf("RECOMPUTE_CONCURRENCY must be at least 1 (got %d)", c.RecomputeConcurrency))
	}

	if c.TuningPath != "" {
		if _, err := os.Stat(c.TuningPath); err != nil {
			problems = append(problems, fmt.Sprintf("TUNING_PATH %q is not readable: %v", c.TuningPath, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
