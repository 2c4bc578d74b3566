package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hechen2/fapiaosum/internal/report"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer-key authentication.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Session state
	SessionTTL time.Duration

	// Optional expense-bucket mapping override (YAML file).
	ExpenseMapPath string
}

func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8090"),
		APIKey:         os.Getenv("FAPIAOSUM_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 33554432), // 32MB
		SessionTTL:     envDuration("SESSION_TTL", 2*time.Hour),
		ExpenseMapPath: os.Getenv("EXPENSE_MAP_PATH"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 33554432
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	return nil
}

// ExpenseMapping loads the configured expense-bucket mapping, falling back to
// the built-in table when no file is configured.
func (c Config) ExpenseMapping() (report.ExpenseMapping, error) {
	if c.ExpenseMapPath == "" {
		return report.DefaultExpenseMapping(), nil
	}
	return LoadExpenseMapping(c.ExpenseMapPath)
}

// LoadExpenseMapping reads a YAML bucket table, e.g.:
//
//	buckets:
//	  - name: 肉蛋禽
//	    categories: [畜禽产品, 肉及肉制品]
func LoadExpenseMapping(path string) (report.ExpenseMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.ExpenseMapping{}, fmt.Errorf("read expense map: %w", err)
	}
	var m report.ExpenseMapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return report.ExpenseMapping{}, fmt.Errorf("parse expense map: %w", err)
	}
	if len(m.Buckets) == 0 {
		return report.ExpenseMapping{}, fmt.Errorf("expense map %s defines no buckets", path)
	}
	for i, b := range m.Buckets {
		if b.Name == "" {
			return report.ExpenseMapping{}, fmt.Errorf("expense map %s: bucket %d has no name", path, i)
		}
	}
	return m, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
