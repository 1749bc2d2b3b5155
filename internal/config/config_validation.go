// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-dev-proxy/internal/proxy"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Defaults must already be applied.
func (cfg *StructuredConfig) validate() error {
	if err := proxy.ValidateMode(cfg.App.Mode); err != nil {
		return errors.Join(ErrInvalidAppConfigs, err)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return errors.Join(ErrInvalidServerConfigs, err)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.ProbeTimeout < 0 {
		return fmt.Errorf("%w: negative probe timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
