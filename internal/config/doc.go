// Package config provides configuration loading, merging, and validation
// facilities for the dev proxy process.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever is still unset after merging. The main
// entry point is [GetStructuredConfig].
//
// This package configures the process itself (mode, listen address,
// timeouts). The proxy rules are resolved separately from the mode's .env
// files, see packages envfile and proxy.
package config
