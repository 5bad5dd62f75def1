// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the notes HTTP server and the background workers
// until a stop signal arrives, then shuts both down gracefully.
package server
