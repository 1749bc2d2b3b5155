package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-dev-proxy/internal/config"
	"github.com/MKhiriev/go-dev-proxy/internal/logger"
	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
	"github.com/MKhiriev/go-dev-proxy/internal/utils"
)

type Handler struct {
	rules   proxy.RuleSet
	proxies map[string]http.Handler
	static  http.Handler
	version string
	mode    string

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler builds the reverse proxies for rules and the optional static
// fallback. The rule set is not modified afterwards.
func NewHandler(rules proxy.RuleSet, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	h := &Handler{
		rules:    rules,
		proxies:  make(map[string]http.Handler, len(rules)),
		version:  cfg.App.Version,
		mode:     cfg.App.Mode,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}

	for prefix, rule := range rules {
		rp, err := h.newRuleProxy(rule)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrInvalidRuleTarget, prefix, err)
		}
		h.proxies[prefix] = rp
	}

	if cfg.Server.StaticDir != "" {
		static, err := newSPAHandler(cfg.Server.StaticDir)
		if err != nil {
			return nil, err
		}
		h.static = static
	}

	logger.Info().Int("rules", len(rules)).Str("static_dir", cfg.Server.StaticDir).Msg("http handler created")
	return h, nil
}

// dispatch forwards to the most specific matching rule, then falls back to
// static files.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	if rule, ok := h.rules.Lookup(r.URL.Path); ok {
		h.proxies[rule.PathPrefix].ServeHTTP(w, r)
		return
	}

	if h.static != nil {
		h.static.ServeHTTP(w, r)
		return
	}

	http.NotFound(w, r)
}
