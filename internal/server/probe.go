package server

import (
	"context"

	"github.com/MKhiriev/go-dev-proxy/internal/adapter"
	"github.com/MKhiriev/go-dev-proxy/internal/logger"
	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
)

// ProbeUpstreams checks each distinct upstream once and logs the outcome.
// It returns the number of unreachable upstreams; it never fails startup.
func ProbeUpstreams(ctx context.Context, prober adapter.UpstreamProber, rules proxy.RuleSet, logger *logger.Logger) int {
	probed := make(map[string]struct{}, len(rules))
	unreachable := 0

	for _, prefix := range rules.Prefixes() {
		origin := rules[prefix].TargetOrigin
		if _, done := probed[origin]; done {
			continue
		}
		probed[origin] = struct{}{}

		if err := prober.Probe(ctx, origin); err != nil {
			unreachable++
			logger.Warn().Err(err).Str("target", origin).Msg("upstream is not reachable yet, requests will fail with 502 until it is up")
			continue
		}
		logger.Info().Str("target", origin).Msg("upstream reachable")
	}

	return unreachable
}
