package server

import (
	"context"
	"net"
	"net/http"

	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

// Server defines the lifecycle contract of the dev server.
type Server interface {
	// RunServer listens on the configured address and serves until ctx is
	// cancelled, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Serve is RunServer on an existing listener.
	Serve(ctx context.Context, ln net.Listener) error

	Reloadable
}

// Reloadable accepts a replacement router while serving.
type Reloadable interface {
	// Reload swaps the handler used for new requests. In-flight requests
	// finish on the handler they started with.
	Reload(handler http.Handler) error
}

// RuleSource produces a freshly resolved rule set.
type RuleSource interface {
	Rules() (proxy.RuleSet, error)
}
