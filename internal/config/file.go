// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for config files. Every format uses
// the same snake_case keys.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration" toml:"token_duration"`
		Version       string   `json:"version" yaml:"version" toml:"version"`
	} `json:"app" yaml:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
		} `json:"db" yaml:"db" toml:"db"`
	} `json:"storage" yaml:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"server" yaml:"server" toml:"server"`

	Feed struct {
		PingInterval   Duration `json:"ping_interval" yaml:"ping_interval" toml:"ping_interval"`
		ListenPostgres bool     `json:"listen_postgres" yaml:"listen_postgres" toml:"listen_postgres"`
	} `json:"feed" yaml:"feed" toml:"feed"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" yaml:"adapter" toml:"adapter"`

	Client struct {
		SessionDSN              string `json:"session_dsn" yaml:"session_dsn" toml:"session_dsn"`
		SurfaceBackgroundErrors bool   `json:"surface_background_errors" yaml:"surface_background_errors" toml:"surface_background_errors"`
	} `json:"client" yaml:"client" toml:"client"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.NewDecoder(bytes.NewReader(data)).Decode(&fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Version:       fc.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Feed: Feed{
			PingInterval:   time.Duration(fc.Feed.PingInterval),
			ListenPostgres: fc.Feed.ListenPostgres,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Client: Client{
			SessionDSN:              fc.Client.SessionDSN,
			SurfaceBackgroundErrors: fc.Client.SurfaceBackgroundErrors,
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in JSON, YAML and TOML files. Bare numbers are read as nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", node.Line)
	}

	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	return d.UnmarshalText([]byte(node.Value))
}

// UnmarshalText implements encoding.TextUnmarshaler, which go-toml uses for
// string values.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
