// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/MKhiriev/go-dev-proxy/internal/logger"
	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
)

// newRuleProxy builds the reverse proxy that executes one rule.
//
// The outbound request keeps the incoming path (after the rule's rewrite, if
// any) joined onto the target's base path. With ChangeOrigin the Host header
// becomes the upstream host; otherwise the client-facing Host is kept.
func (h *Handler) newRuleProxy(rule proxy.ProxyRule) (http.Handler, error) {
	target, err := rule.Target()
	if err != nil {
		return nil, err
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			if rule.HasRewrite() {
				pr.Out.URL.Path = rule.Rewrite(pr.In.URL.Path)
				pr.Out.URL.RawPath = ""
			}
			pr.SetURL(target)
			pr.SetXForwarded()
			if !rule.ChangeOrigin {
				pr.Out.Host = pr.In.Host
			}
		},
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			ExpectContinueTimeout: time.Second,
		},
		// stream server-sent events and chunked responses without buffering
		FlushInterval: -1,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log := logger.FromRequest(r)
			if errors.Is(err, r.Context().Err()) {
				log.Debug().Err(err).Str("prefix", rule.PathPrefix).Msg("client cancelled proxied request")
				return
			}
			log.Error().Err(err).
				Str("prefix", rule.PathPrefix).
				Str("target", rule.TargetOrigin).
				Msg("reverse proxy request forwarding error")
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		},
	}, nil
}
