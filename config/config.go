package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT"        default:":8081"`
	GrpcPort        string        `envconfig:"GRPC_PORT"        default:":50051"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	StorageDriver   string        `envconfig:"STORAGE_DRIVER"   default:"postgres"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	AdminToken      string        `envconfig:"ADMIN_TOKEN"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// seed tool
	GrpcTarget string `envconfig:"CATALOG_GRPC_TARGET" default:"localhost:50051"`
	SeedCount  int    `envconfig:"SEED_COUNT"          default:"10"`
}

var (
	config Config
	once   sync.Once
)

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("could not process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SeedCount < 0 {
		return fmt.Errorf("SEED_COUNT cannot be negative: %d", c.SeedCount)
	}
	return nil
}

// ValidateStorage checks the settings only the server needs.
func (c *Config) ValidateStorage() error {
	switch c.StorageDriver {
	case DriverPostgres, DriverPgx:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for storage driver %q", c.StorageDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Failed to load configuration: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, Storage=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.StorageDriver, config.LogLevel)
		if config.DatabaseURL != "" {
			logger.Info("Configuration loaded: DatabaseURL is set")
		}
		if config.AdminToken == "" {
			logger.Warn("Configuration loaded: ADMIN_TOKEN is empty, admin routes are unprotected")
		}
	})
	return &config
}
