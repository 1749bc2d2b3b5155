// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the dev proxy's outbound calls to its upstreams.
//
// The only call today is a reachability probe, issued once per upstream at
// startup so a mistyped VITE_API_TARGET shows up in the logs before the first
// proxied request fails. A failed probe is never fatal: the gateway is often
// started after the front end.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/upstream_prober_mock.go -package=mock

// UpstreamProber checks whether an upstream origin answers HTTP.
type UpstreamProber interface {
	// Probe returns nil if origin answered with any HTTP response, or an
	// error wrapping [ErrUpstreamUnreachable] otherwise.
	Probe(ctx context.Context, origin string) error
}
