// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive notes client runtime.
//
// It connects the signed-in identity to the note store, so the live feed
// follows sign-in and sign-out, and runs the terminal UI for the lifetime of
// the process.
package client
