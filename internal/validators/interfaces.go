// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks service-layer input before it reaches storage.
//
// A [Validator] validates a value as a whole or, when field names are given,
// only those fields.
package validators

import "context"

// Validator validates input values, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
