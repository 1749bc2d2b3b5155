// Package server wires and runs the dev proxy's HTTP server.
//
// It provides the server lifecycle (listen, serve, signal-driven graceful
// shutdown), hot replacement of the live router when proxy rules are
// re-resolved, and the startup probe of upstream origins.
package server
