// Package http implements the dev server's HTTP surface.
//
// Requests whose path starts with a resolved proxy rule prefix are forwarded
// to that rule's upstream origin. Everything else is served from the static
// directory, if one is configured, or answered with 404. A small set of
// /__devproxy/ routes exposes the resolved rules for inspection. Request
// tracing and access logging wrap every route.
package http
