// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the resolver. Callers can match against them
// with [errors.Is].
var (
	// ErrConfiguration is the kind shared by every [ConfigurationError].
	ErrConfiguration = errors.New("proxy configuration error")

	// ErrDuplicatePrefix is returned by [RuleSet.Add] when a rule with the
	// same path prefix is already present.
	ErrDuplicatePrefix = errors.New("path prefix is already taken")
)

// ConfigurationError reports a resolved value that cannot be used to build
// the proxy configuration. It aborts dev-server initialization.
type ConfigurationError struct {
	// Field names the offending setting (e.g. "mode", "VITE_API_TARGET").
	Field string
	// Value is the rejected value as it was resolved.
	Value string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Is makes every ConfigurationError match [ErrConfiguration].
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
