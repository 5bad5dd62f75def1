// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the notes server and client.
//
// Configuration is assembled from multiple sources. For each field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, YAML or TOML, chosen by extension)
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
