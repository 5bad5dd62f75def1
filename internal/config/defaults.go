// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultServerAddress  = "localhost:8080"
	defaultRequestTimeout = 15 * time.Second
	defaultTokenDuration  = 24 * time.Hour
	defaultTokenIssuer    = "go-notes-keeper"
	defaultPingInterval   = 30 * time.Second
	defaultSessionDSN     = "notes-session.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Feed: Feed{
			PingInterval: defaultPingInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Client: Client{
			SessionDSN: defaultSessionDSN,
		},
	}
}
