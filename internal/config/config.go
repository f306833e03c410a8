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
	RunAddress          string
	DatabaseURI         string
	PaymentsAPIAddress  string
	PaymentsAPIKey      string
	SessionSecret       string
	AppBaseURL          string
	DemoMode            bool
	AccountSyncInterval time.Duration
	WorkerPoolSize      int
	ShutdownTimeout     time.Duration
	MaxAccountsBatch    int
}

const (
	defaultRunAddress          = ":8080"
	defaultSessionSecret       = "change-me-in-production"
	defaultAppBaseURL          = "http://localhost:8080"
	defaultAccountSyncInterval = 30 * time.Second
	defaultWorkerPoolSize      = 4
	defaultShutdownTimeout     = 10 * time.Second
	defaultMaxAccountsBatch    = 32
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		PaymentsAPIAddress:  getString(lookup, "PAYMENTS_API_ADDRESS", ""),
		PaymentsAPIKey:      getString(lookup, "PAYMENTS_API_KEY", ""),
		SessionSecret:       getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		AppBaseURL:          getString(lookup, "APP_BASE_URL", defaultAppBaseURL),
		DemoMode:            getBool(lookup, "DEMO_MODE", false),
		AccountSyncInterval: getDuration(lookup, "ACCOUNT_SYNC_INTERVAL", defaultAccountSyncInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxAccountsBatch:    getInt(lookup, "SYNC_BATCH_SIZE", defaultMaxAccountsBatch),
	}

	fs := flag.NewFlagSet("merchanthub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		syncIntervalStr    = cfg.AccountSyncInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentsAPIAddress, "p", cfg.PaymentsAPIAddress, "Payments platform API base URL")
	fs.StringVar(&cfg.AppBaseURL, "base-url", cfg.AppBaseURL, "Public base URL of this application")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.BoolVar(&cfg.DemoMode, "demo", cfg.DemoMode, "Enable demo mode with fabricated verification data")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent account sync workers")
	fs.StringVar(&syncIntervalStr, "sync-interval", syncIntervalStr, "Interval between account status syncs")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxAccountsBatch, "sync-batch", cfg.MaxAccountsBatch, "Maximum accounts per sync batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.AccountSyncInterval, err = time.ParseDuration(syncIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sync interval: %w", err)
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

	if keyFile, ok := lookup("PAYMENTS_API_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read payments api key file: %w", err)
		}
		cfg.PaymentsAPIKey = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxAccountsBatch <= 0 {
		cfg.MaxAccountsBatch = defaultMaxAccountsBatch
	}

	if cfg.AccountSyncInterval <= 0 {
		cfg.AccountSyncInterval = defaultAccountSyncInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentsAPIAddress == "" {
		return nil, fmt.Errorf("payments API address must be provided")
	}

	if cfg.PaymentsAPIKey == "" {
		return nil, fmt.Errorf("payments API key must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
