package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	SessionSecret        string
	PricePerGallon       float64
	PriceFeedAddress     string
	PriceRefreshInterval time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultSessionSecret        = "change-me-in-production"
	defaultPricePerGallon       = 2.50
	defaultPriceRefreshInterval = 5 * time.Minute
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		SessionSecret:        getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		PricePerGallon:       getFloat(lookup, "PRICE_PER_GALLON", defaultPricePerGallon),
		PriceFeedAddress:     getString(lookup, "PRICE_FEED_ADDRESS", ""),
		PriceRefreshInterval: getDuration(lookup, "PRICE_REFRESH_INTERVAL", defaultPriceRefreshInterval),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("fuelquote", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		refreshIntervalStr = cfg.PriceRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.Float64Var(&cfg.PricePerGallon, "price", cfg.PricePerGallon, "Fixed price per gallon")
	fs.StringVar(&cfg.PriceFeedAddress, "price-feed", cfg.PriceFeedAddress, "External price feed base URL (optional)")
	fs.StringVar(&refreshIntervalStr, "price-refresh", refreshIntervalStr, "Interval between price feed refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PriceRefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid price refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.PriceRefreshInterval <= 0 {
		cfg.PriceRefreshInterval = defaultPriceRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PricePerGallon <= 0 {
		return nil, fmt.Errorf("price per gallon must be positive")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
