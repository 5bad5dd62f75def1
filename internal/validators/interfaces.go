// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces input rules shared by the notes server and
// client before anything reaches storage or the network.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule for the value's type is checked; otherwise only the
// named ones are.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
