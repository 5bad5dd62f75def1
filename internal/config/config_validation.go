// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks rules shared by every binary: no duration may be
// negative.
func (cfg *StructuredConfig) validate() error {
	durations := []int64{
		int64(cfg.App.TokenDuration),
		int64(cfg.Server.RequestTimeout),
		int64(cfg.Feed.PingInterval),
		int64(cfg.Adapter.RequestTimeout),
	}
	for _, d := range durations {
		if d < 0 {
			return ErrInvalidDurations
		}
	}

	return nil
}

// validateServer checks the fields required by the notes server.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
