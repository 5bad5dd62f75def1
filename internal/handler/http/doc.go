// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API and the websocket live feed of the
// notes server.
//
// Request tracing, access logging, compression and token checks are done by
// middleware here before requests reach the service layer. Error bodies are
// the plain-text messages from package app, which the client matches on.
package http
