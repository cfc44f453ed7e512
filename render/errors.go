// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrInvalidState is returned when a frame operation is issued outside
	// the window it is valid in, e.g. Submit before Begin or End twice.
	ErrInvalidState = errors.New("render: invalid state")

	// ErrDeviceUnavailable is returned by Begin when the backend cannot
	// accept a frame right now (lost or minimized surface). Retrying on the
	// next tick is the expected recovery.
	ErrDeviceUnavailable = errors.New("render: device unavailable")

	// ErrInvalidPrimitive is returned for a primitive with an unknown kind
	// or a texture attached to a non-quad.
	ErrInvalidPrimitive = errors.New("render: invalid primitive")
)
