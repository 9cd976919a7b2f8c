// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while extracting credentials from the
// "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader is returned when the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// follow the "<scheme> <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the token part of the header is empty.
	ErrEmptyToken = errors.New("empty token")
)
