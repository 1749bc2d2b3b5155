// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dev-proxy/internal/utils"
)

type ruleView struct {
	PathPrefix   string `json:"path_prefix"`
	TargetOrigin string `json:"target_origin"`
	ChangeOrigin bool   `json:"change_origin"`
	PathRewrite  bool   `json:"path_rewrite"`
}

type rulesResponse struct {
	Mode  string     `json:"mode"`
	Rules []ruleView `json:"rules"`
}

// getRules reports the active rules in match order.
func (h *Handler) getRules(w http.ResponseWriter, r *http.Request) {
	resp := rulesResponse{
		Mode:  h.mode,
		Rules: make([]ruleView, 0, len(h.rules)),
	}
	for _, prefix := range h.rules.Prefixes() {
		rule := h.rules[prefix]
		resp.Rules = append(resp.Rules, ruleView{
			PathPrefix:   rule.PathPrefix,
			TargetOrigin: rule.TargetOrigin,
			ChangeOrigin: rule.ChangeOrigin,
			PathRewrite:  rule.HasRewrite(),
		})
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Error().Err(err).Msg("error writing rules response")
	}
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.version
	if version == "" {
		version = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}

func (h *Handler) dispatchHandler() http.Handler {
	return http.HandlerFunc(h.dispatch)
}
