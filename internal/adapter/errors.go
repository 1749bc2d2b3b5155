package adapter

import "errors"

var (
	// ErrUpstreamUnreachable is returned by probes that got no HTTP response.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
)
