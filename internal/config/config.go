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
	JWTSecret           string
	AdminSecret         string
	GatewayMinDelay     time.Duration
	GatewayMaxDelay     time.Duration
	PaymentPollInterval time.Duration
	PaymentStuckAge     time.Duration
	PaymentPollBatch    int
	WorkerPoolSize      int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultGatewayMinDelay     = 1 * time.Second
	defaultGatewayMaxDelay     = 5 * time.Second
	defaultPaymentPollInterval = 5 * time.Second
	defaultPaymentStuckAge     = time.Minute
	defaultPaymentPollBatch    = 32
	defaultWorkerPoolSize      = 4
	defaultShutdownTimeout     = 10 * time.Second
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
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AdminSecret:         getString(lookup, "ADMIN_SECRET", ""),
		GatewayMinDelay:     getDuration(lookup, "GATEWAY_MIN_DELAY", defaultGatewayMinDelay),
		GatewayMaxDelay:     getDuration(lookup, "GATEWAY_MAX_DELAY", defaultGatewayMaxDelay),
		PaymentPollInterval: getDuration(lookup, "PAYMENT_POLL_INTERVAL", defaultPaymentPollInterval),
		PaymentStuckAge:     getDuration(lookup, "PAYMENT_STUCK_AGE", defaultPaymentStuckAge),
		PaymentPollBatch:    getInt(lookup, "PAYMENT_POLL_BATCH", defaultPaymentPollBatch),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.PaymentPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AdminSecret, "admin-secret", cfg.AdminSecret, "Secret that promotes a registration to admin")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent payment finalizer workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between stuck payment polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.PaymentPollBatch, "poll-batch", cfg.PaymentPollBatch, "Maximum payments per polling batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PaymentPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.PaymentPollBatch <= 0 {
		cfg.PaymentPollBatch = defaultPaymentPollBatch
	}

	if cfg.PaymentPollInterval <= 0 {
		cfg.PaymentPollInterval = defaultPaymentPollInterval
	}

	if cfg.PaymentStuckAge <= 0 {
		cfg.PaymentStuckAge = defaultPaymentStuckAge
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.GatewayMinDelay < 0 {
		cfg.GatewayMinDelay = 0
	}

	if cfg.GatewayMaxDelay < cfg.GatewayMinDelay {
		cfg.GatewayMaxDelay = cfg.GatewayMinDelay
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

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
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
