// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrFileRead is returned (wrapped) by [FileSource] implementations when the
// configuration source file cannot be opened or read. It is never retried.
var ErrFileRead = errors.New("error reading config source file")
