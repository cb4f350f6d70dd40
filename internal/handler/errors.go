// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no config
	// service is available to produce a payload.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errConfigNotResolved wraps the failure of the startup resolution. The
	// underlying cause (missing value, unreadable file) stays reachable
	// through errors.Is.
	errConfigNotResolved = errors.New("error resolving config")
)
