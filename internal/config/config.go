package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process-level configuration. Upstream credentials are not
// configuration: every tool call carries its own.
type Config struct {
	// Port the HTTP listener binds to.
	Port string `envconfig:"PORT" default:"8000"`
	// RequestTimeout bounds each upstream reporting fetch.
	RequestTimeout time.Duration `envconfig:"FUSION_REQUEST_TIMEOUT" default:"60s"`
	// ConnectTimeout bounds the connection-test probe.
	ConnectTimeout time.Duration `envconfig:"FUSION_CONNECT_TIMEOUT" default:"30s"`
	// TLSSkipVerify disables upstream certificate verification. Defaults on
	// because Fusion pods behind self-signed chains are the common case for
	// this server's deployments.
	TLSSkipVerify bool `envconfig:"FUSION_TLS_SKIP_VERIFY" default:"true"`
	// ShutdownTimeout is the drain window on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}
