// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before they reach the
// service layer. Validation is decoupled from transport and storage: a
// Validator is injected into services and invoked with the raw request
// struct, optionally scoped to named fields.
package validators

import "context"

// Validator validates an arbitrary request value. When field names are
// given, only those fields are checked; an unknown field name is an error.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
