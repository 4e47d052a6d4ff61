package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port string `env:"PORT" envDefault:":8080"`

	// Dataset
	DatasetPath     string `env:"DATASET_PATH" envDefault:"./data/KC_CLTUR_SAFE_MAP_INFO_2024.csv"`
	DatasetDBPath   string `env:"DATASET_DB_PATH"` // load from the SQLite snapshot when set
	DatasetEncoding string `env:"DATASET_ENCODING" envDefault:"utf-8"`

	TopN int `env:"TOP_N" envDefault:"3"`

	// Rate limiting per client IP
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"120"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
}

// Load 加载配置. A .env file in the working directory, if present, seeds
// variables that are not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TopN <= 0 {
		return nil, fmt.Errorf("parse env: TOP_N must be positive, got %d", cfg.TopN)
	}
	// RATE_LIMIT=0 disables limiting, so the window only matters when it is set
	if cfg.RateLimit > 0 && cfg.RateWindow <= 0 {
		return nil, fmt.Errorf("parse env: RATE_WINDOW must be positive, got %v", cfg.RateWindow)
	}
	return &cfg, nil
}
