// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the middleware chain. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingContainerID is returned when a request to the record store
	// does not name the container it is addressed to.
	ErrMissingContainerID = errors.New("empty `X-Container-ID` header")

	// ErrUnknownContainer is returned when the named container is not the one
	// served by this process.
	ErrUnknownContainer = errors.New("unknown container")
)
