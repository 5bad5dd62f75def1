// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a host:port flag value. An empty host means all interfaces.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command line of the running binary. Both binaries
// accept the same flag set; each validated view ignores what it does not use.
//
//	-a               server listen address, host:port
//	-d               PostgreSQL DSN
//	-c, -config      config file (.json, .yaml, .yml or .toml)
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout server request timeout
//	-ping-interval   live feed ping interval
//	-listen-postgres relay PostgreSQL notifications into the live feed
//	-server-url      server address used by the client
//	-client-timeout  client request timeout
//	-session-dsn     client session database file
//	-surface-errors  show failed background actions as notices
func ParseFlags() *StructuredConfig {
	// ExitOnError: a bad flag exits with usage before this returns.
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg     StructuredConfig
		address NetAddress
	)

	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Feed.PingInterval, "ping-interval", 0, "Live feed ping interval")
	fs.BoolVar(&cfg.Feed.ListenPostgres, "listen-postgres", false, "Relay PostgreSQL notifications into the live feed")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "server-url", "", "Server address used by the client")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "client-timeout", 0, "Client request timeout")
	fs.StringVar(&cfg.Client.SessionDSN, "session-dsn", "", "Client session database file")
	fs.BoolVar(&cfg.Client.SurfaceBackgroundErrors, "surface-errors", false, "Show failed background actions as notices")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = address.String()

	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
