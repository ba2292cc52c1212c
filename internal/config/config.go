package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress    string
	DatabaseURI   string
	SessionSecret string

	AdminFullName string
	AdminUsername string
	AdminEmail    string
	AdminPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	MediaServiceURL string
	MediaFolder     string

	NotifyTimeout   time.Duration
	NotifyQueueSize int
	NotifyWorkers   int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultAdminFullName   = "Administrator"
	defaultAdminUsername   = "Admin"
	defaultAdminEmail      = "admin@admin.com"
	defaultSMTPPort        = 587
	defaultMediaFolder     = "artistgrade-site"
	defaultNotifyTimeout   = 10 * time.Second
	defaultNotifyQueueSize = 64
	defaultNotifyWorkers   = 2
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from .env file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		AdminFullName:   getString(lookup, "ADMIN_FULLNAME", defaultAdminFullName),
		AdminUsername:   getString(lookup, "ADMIN_USERNAME", defaultAdminUsername),
		AdminEmail:      getString(lookup, "ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		SMTPHost:        getString(lookup, "SMTP_HOST", "localhost"),
		SMTPPort:        getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:    getString(lookup, "EMAIL_USER", ""),
		SMTPPassword:    getString(lookup, "EMAIL_PASS", ""),
		EmailFrom:       getString(lookup, "EMAIL_FROM", ""),
		MediaServiceURL: getString(lookup, "MEDIA_SERVICE_URL", ""),
		MediaFolder:     getString(lookup, "MEDIA_FOLDER", defaultMediaFolder),
		NotifyTimeout:   getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		NotifyQueueSize: getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyWorkers:   getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("artistgrade", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		notifyTimeoutStr   = cfg.NotifyTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.MediaServiceURL, "m", cfg.MediaServiceURL, "Media host base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Password for the seeded admin account")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Capacity of the notification queue")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Per-email delivery timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyTimeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUsername
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be provided")
	}

	if cfg.MediaServiceURL == "" {
		return nil, fmt.Errorf("media service URL must be provided")
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
