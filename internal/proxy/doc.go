// Package proxy resolves the development server's reverse-proxy rules.
//
// The entry point is [Resolve], which turns a runtime mode and an environment
// snapshot into a [RuleSet]. Resolution is a pure function of its inputs: it
// never reads the process environment and performs no network or file I/O,
// so callers load the environment first (see package envfile) and pass the
// result in.
package proxy
