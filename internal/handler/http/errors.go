// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Failures of Authorization header parsing in the auth middleware.
// All of them surface to the client as 401.
var (
	// ErrEmptyAuthorizationHeader is reported when the request carries no
	// Authorization header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is reported when the header cannot be
	// split into a scheme and a credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is reported when the scheme is present but the
	// credential part is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
