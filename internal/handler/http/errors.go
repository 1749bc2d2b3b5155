// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRuleTarget is returned by [NewHandler] when a rule's origin
	// cannot be parsed. Rules produced by the resolver never trigger it.
	ErrInvalidRuleTarget = errors.New("invalid proxy rule target")

	// ErrStaticDirNotFound is returned by [NewHandler] when the configured
	// static directory does not exist.
	ErrStaticDirNotFound = errors.New("static directory not found")
)
