package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the preview server.
type Config struct {
	// Address is the listen address.
	// Default: "localhost:3000"
	Address string

	// LiveReload enables the /livereload channel and the spec watcher.
	LiveReload bool

	// PollInterval is how often spec files are checked for changes.
	// Default: 500ms
	PollInterval time.Duration

	// MetricsPath is the Prometheus endpoint. Empty or "-" disables it.
	MetricsPath string

	// MaxBodyBytes limits POST /render bodies.
	// Default: 1MB
	MaxBodyBytes int64

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration

	// Registry collects build and HTTP metrics. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry

	// Logger is the server logger.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Address:         "localhost:3000",
		LiveReload:      true,
		PollInterval:    500 * time.Millisecond,
		MetricsPath:     "/metrics",
		MaxBodyBytes:    1 << 20,
		ShutdownTimeout: 10 * time.Second,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
