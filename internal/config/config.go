// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
)

// Defaults applied after all sources are merged.
const (
	DefaultMode            = "development"
	DefaultEnvDir          = "."
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultProbeTimeout    = 2 * time.Second
)

// StructuredConfig is the top-level configuration container for the dev
// proxy. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the runtime mode and where its env files live.
	App App `envPrefix:"APP_"`

	// Server holds listen address, timeouts and the static fallback.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the upstream reachability probe.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Mode selects the env-file layer (.env.<mode>, .env.<mode>.local).
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// EnvDir is the directory holding the .env files.
	// Env: APP_ENV_DIR
	EnvDir string `env:"ENV_DIR"`

	// Version is reported by the /__devproxy/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// WatchEnv enables reloading proxy rules when env files change.
	// Env: APP_WATCH_ENV
	WatchEnv bool `env:"WATCH_ENV"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the dev server listens on,
	// in "host:port" format. Defaults to 0.0.0.0:5173.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// StaticDir, when set, is served for requests no proxy rule matches.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Adapter holds settings for outbound calls made by the proxy itself.
type Adapter struct {
	// ProbeTimeout bounds the startup reachability probe of each upstream.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// SkipProbe disables the startup probe.
	// Env: ADAPTER_SKIP_PROBE
	SkipProbe bool `env:"SKIP_PROBE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Mode == "" {
		cfg.App.Mode = DefaultMode
	}
	if cfg.App.EnvDir == "" {
		cfg.App.EnvDir = DefaultEnvDir
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = proxy.DevServerAddress()
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Adapter.ProbeTimeout == 0 {
		cfg.Adapter.ProbeTimeout = DefaultProbeTimeout
	}
}
