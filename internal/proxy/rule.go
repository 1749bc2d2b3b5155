// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// RewriteFunc maps an incoming request path to the path sent upstream.
type RewriteFunc func(path string) string

// StripPrefix returns a RewriteFunc that removes prefix from the start of the
// path. It is available for rules that need it; [Resolve] never selects it.
func StripPrefix(prefix string) RewriteFunc {
	return func(path string) string {
		stripped := strings.TrimPrefix(path, prefix)
		if stripped == "" {
			return "/"
		}
		return stripped
	}
}

// ProxyRule routes every request whose path starts with PathPrefix to
// TargetOrigin.
type ProxyRule struct {
	// PathPrefix selects the requests handled by this rule. Unique within a RuleSet.
	PathPrefix string `json:"path_prefix"`

	// TargetOrigin is the absolute upstream origin (e.g. "http://gateway:8080").
	TargetOrigin string `json:"target_origin"`

	// ChangeOrigin rewrites the Host header to the upstream host when true.
	ChangeOrigin bool `json:"change_origin"`

	// PathRewrite is applied to the request path before forwarding.
	// nil means identity.
	PathRewrite RewriteFunc `json:"-"`
}

// Rewrite applies the rule's PathRewrite to path, or returns path unchanged
// when none is set.
func (r ProxyRule) Rewrite(path string) string {
	if r.PathRewrite == nil {
		return path
	}
	return r.PathRewrite(path)
}

// HasRewrite reports whether a non-identity rewrite is configured.
func (r ProxyRule) HasRewrite() bool {
	return r.PathRewrite != nil
}

// Match reports whether the rule handles the given request path.
func (r ProxyRule) Match(path string) bool {
	return strings.HasPrefix(path, r.PathPrefix)
}

// Target parses TargetOrigin. The origin was validated during resolution, so
// an error here means the rule was built by hand.
func (r ProxyRule) Target() (*url.URL, error) {
	return parseOrigin(r.TargetOrigin)
}

// RuleSet maps path prefixes to their rules.
type RuleSet map[string]ProxyRule

// Add registers rule under its PathPrefix. It returns [ErrDuplicatePrefix]
// if the prefix is already taken.
func (rs RuleSet) Add(rule ProxyRule) error {
	if _, ok := rs[rule.PathPrefix]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePrefix, rule.PathPrefix)
	}
	rs[rule.PathPrefix] = rule
	return nil
}

// Prefixes returns the rule prefixes ordered longest first, so the most
// specific rule is tried before broader ones.
func (rs RuleSet) Prefixes() []string {
	prefixes := make([]string, 0, len(rs))
	for prefix := range rs {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}

// Lookup returns the most specific rule matching path.
func (rs RuleSet) Lookup(path string) (ProxyRule, bool) {
	for _, prefix := range rs.Prefixes() {
		if rule := rs[prefix]; rule.Match(path) {
			return rule, true
		}
	}
	return ProxyRule{}, false
}
