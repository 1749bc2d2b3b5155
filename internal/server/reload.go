// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-dev-proxy/internal/envfile"
	"github.com/MKhiriev/go-dev-proxy/internal/logger"
	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
)

// HandlerFactory builds the router for a rule set.
type HandlerFactory func(rules proxy.RuleSet) (http.Handler, error)

type envRuleSource struct {
	dir     string
	mode    string
	process func() map[string]string
}

// NewEnvRuleSource returns a [RuleSource] that reloads the mode's env files
// from dir, layers the process environment on top and resolves the result.
// process may be nil to ignore the process environment.
func NewEnvRuleSource(dir, mode string, process func() map[string]string) RuleSource {
	return &envRuleSource{dir: dir, mode: mode, process: process}
}

func (s *envRuleSource) Rules() (proxy.RuleSet, error) {
	var processEnv map[string]string
	if s.process != nil {
		processEnv = s.process()
	}

	snapshot, err := envfile.Load(s.dir, s.mode, processEnv)
	if err != nil {
		return nil, err
	}

	return proxy.Resolve(s.mode, snapshot)
}

// Reloader re-resolves proxy rules and swaps the live router.
type Reloader struct {
	source RuleSource
	build  HandlerFactory
	target Reloadable
	logger *logger.Logger
}

func NewReloader(source RuleSource, build HandlerFactory, target Reloadable, logger *logger.Logger) *Reloader {
	return &Reloader{
		source: source,
		build:  build,
		target: target,
		logger: logger,
	}
}

// Reload resolves the rules again and installs a router built from them.
// On any error the previous router stays active.
func (r *Reloader) Reload() error {
	rules, err := r.source.Rules()
	if err != nil {
		return fmt.Errorf("error resolving proxy rules: %w", err)
	}

	handler, err := r.build(rules)
	if err != nil {
		return fmt.Errorf("error building router: %w", err)
	}

	if err := r.target.Reload(handler); err != nil {
		return fmt.Errorf("error installing router: %w", err)
	}

	for _, prefix := range rules.Prefixes() {
		r.logger.Info().
			Str("prefix", prefix).
			Str("target", rules[prefix].TargetOrigin).
			Msg("proxy rule reloaded")
	}
	return nil
}

// OnEnvChange is an [envfile.ChangeCallback] that reloads and logs failures.
func (r *Reloader) OnEnvChange() {
	if err := r.Reload(); err != nil {
		r.logger.Error().Err(err).Msg("keeping previous proxy rules")
	}
}
