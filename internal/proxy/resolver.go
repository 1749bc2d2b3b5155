// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/caarlos0/env/v11"
)

const (
	// APIPrefix is the path prefix forwarded to the backend gateway.
	APIPrefix = "/api/v1"

	// DefaultTargetOrigin is used when VITE_API_TARGET is absent or empty.
	DefaultTargetOrigin = "http://gateway:8080"

	// TargetOverrideKey names the environment variable overriding the origin.
	TargetOverrideKey = "VITE_API_TARGET"

	// DevServerHost binds the dev server on all interfaces.
	DevServerHost = "0.0.0.0"

	// DevServerPort is the dev server's listen port.
	DevServerPort = 5173
)

var modePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// resolverEnv is decoded from the environment snapshot, never from the
// process environment.
type resolverEnv struct {
	APITarget string `env:"VITE_API_TARGET"`
}

// Resolve produces the proxy rules for mode from the environment snapshot
// envSource.
//
// The result always holds exactly one rule, for [APIPrefix], with
// ChangeOrigin set and no path rewrite. Its TargetOrigin is the value of
// VITE_API_TARGET when that is present and non-empty, otherwise
// [DefaultTargetOrigin].
//
// Returns a *[ConfigurationError] when mode is not a valid identifier or the
// resolved origin is not an absolute URI.
func Resolve(mode string, envSource map[string]string) (RuleSet, error) {
	if err := ValidateMode(mode); err != nil {
		return nil, err
	}

	// env falls back to os.Environ for a nil map.
	if envSource == nil {
		envSource = map[string]string{}
	}

	var e resolverEnv
	if err := env.ParseWithOptions(&e, env.Options{Environment: envSource}); err != nil {
		return nil, fmt.Errorf("error decoding environment snapshot: %w", err)
	}

	target := DefaultTargetOrigin
	if e.APITarget != "" {
		target = e.APITarget
	}

	if _, err := parseOrigin(target); err != nil {
		return nil, &ConfigurationError{Field: TargetOverrideKey, Value: target, Err: err}
	}

	rules := make(RuleSet, 1)
	// /api/v1 is forwarded as-is. Whether the gateway expects /api/v1 or a
	// stripped /api path is not settled, so no rewrite is installed.
	if err := rules.Add(ProxyRule{
		PathPrefix:   APIPrefix,
		TargetOrigin: target,
		ChangeOrigin: true,
	}); err != nil {
		return nil, err
	}

	return rules, nil
}

// ValidateMode checks that mode can select an env-file layer.
func ValidateMode(mode string) error {
	if mode == "" {
		return &ConfigurationError{Field: "mode", Value: mode, Err: errors.New("mode must not be empty")}
	}
	if !modePattern.MatchString(mode) {
		return &ConfigurationError{Field: "mode", Value: mode, Err: errors.New("mode must be an identifier")}
	}
	// .env.local.local would be ambiguous with the .local suffix.
	if mode == "local" {
		return &ConfigurationError{Field: "mode", Value: mode, Err: errors.New(`"local" conflicts with the .local env file suffix`)}
	}
	return nil
}

// DevServerAddress is the dev server's default listen address.
func DevServerAddress() string {
	return fmt.Sprintf("%s:%d", DevServerHost, DevServerPort)
}

func parseOrigin(origin string) (*url.URL, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("origin must be an absolute URI with scheme and host")
	}
	return u, nil
}
