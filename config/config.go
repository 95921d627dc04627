package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Address the HTTP server listens on
	Port string `env:"SERVER_PORT" envDefault:"5250"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Catalog of malls, read once per load cycle
	DataFile string `env:"DATA_FILE" envDefault:"data/malls.json"`

	// Optional region shape table (JSON or YAML). Empty uses the built-in table.
	RegionsFile string `env:"REGIONS_FILE"`

	// How often the catalog is re-read from disk. Zero disables reloading.
	ReloadInterval time.Duration `env:"CATALOG_RELOAD_INTERVAL" envDefault:"0s"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/clicks.db"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Cooldown struct {
		// Window during which repeated clicks by one client on one mall are ignored
		Window time.Duration `env:"CLICK_COOLDOWN" envDefault:"5s"`

		// "memory" or "redis"
		Backend string `env:"COOLDOWN_BACKEND" envDefault:"memory"`

		// Number of keys the in-memory store can hold
		MaxKeys int64 `env:"COOLDOWN_MAX_KEYS" envDefault:"100000"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
		Prefix   string `env:"REDIS_PREFIX" envDefault:"mallmap:cooldown:"`
	}

	RateLimit struct {
		RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
		Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
	}

	// BatchProcessing configuration
	BatchProcessing struct {
		// Maximum number of click events to accumulate before processing
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Maximum time to wait before processing a non-full batch (in seconds)
		MaxBatchWaitTime int `env:"BATCH_WAIT_TIME" envDefault:"5"`

		// Number of concurrent batch workers
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Capacity of the batch channel
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"64"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"1"`
	}
}

// LoadConfig reads .env files when present, then the process environment
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		// A missing .env file is fine; real environment variables still apply.
		_ = godotenv.Load(f)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	switch c.Cooldown.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cooldown backend %q", c.Cooldown.Backend)
	}
	if c.Cooldown.Window < 0 {
		return fmt.Errorf("click cooldown must not be negative")
	}
	if c.BatchProcessing.MaxBatchSize <= 0 {
		return fmt.Errorf("batch max size must be positive")
	}
	if c.BatchProcessing.ProcessorCount <= 0 {
		return fmt.Errorf("batch processor count must be positive")
	}
	if c.ReloadInterval < 0 {
		return fmt.Errorf("catalog reload interval must not be negative")
	}
	return nil
}

// BatchWait returns the batch flush interval as a duration
func (c *Config) BatchWait() time.Duration {
	return time.Duration(c.BatchProcessing.MaxBatchWaitTime) * time.Second
}
