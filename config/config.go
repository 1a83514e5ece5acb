// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// defaults doubles as the list of keys bound to environment variables.
var defaults = map[string]any{
	"logging.level": "info",

	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": 5 * time.Second,

	"http.request_timeout": 3 * time.Second,

	"repository.backend": "postgres",

	"metrics.enabled": true,
	"metrics.path":    "/metrics",

	"postgres.host":            "localhost",
	"postgres.port":            5432,
	"postgres.user":            "postgres",
	"postgres.password":        "postgres",
	"postgres.db_name":         "teams_db",
	"postgres.ssl_mode":        "disable",
	"postgres.migrations_dir":  "db/migrations",
	"postgres.migrate_timeout": 10 * time.Second,
	"postgres.query_timeout":   2 * time.Second,
	"postgres.max_conns":       10,
	"postgres.min_conns":       2,
}

// NewConfig loads configuration from config/.env and the process environment.
func NewConfig() (*Config, error) {
	return Load(envFile)
}

// Load reads an optional dotenv file, then resolves every key through viper.
// Variables already present in the environment win over the file.
func Load(dotenv string) (*Config, error) {
	if envMap, err := godotenv.Read(dotenv); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
