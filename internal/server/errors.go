// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means NewServer got no HTTP handler or address.
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListenFailed wraps a listener error that stopped the relay before
	// a stop signal did.
	ErrListenFailed = errors.New("http listener failed")
)
