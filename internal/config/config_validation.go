// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the relay.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if err := validateBaseURL(cfg.Adapter.MineruBaseURL); err != nil {
		return fmt.Errorf("%w: mineru base url: %w", ErrInvalidAdapterConfigs, err)
	}
	if err := validateBaseURL(cfg.Adapter.ConverterBaseURL); err != nil {
		return fmt.Errorf("%w: converter base url: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
