// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import "errors"

// Package errors. Every one of them is fatal for the demo; cmd/triangle
// exits on the first error it sees.
var (
	// ErrBackendUnavailable is returned when the requested hal backend
	// has not been registered (missing blank import).
	ErrBackendUnavailable = errors.New("triangle: graphics backend not available")

	// ErrNoAdapter is returned when the instance exposes no adapters.
	ErrNoAdapter = errors.New("triangle: no compatible GPU adapter found")

	// ErrAcquireTimeout is returned when the surface does not hand out
	// its next presentable image.
	ErrAcquireTimeout = errors.New("triangle: timeout acquiring surface texture")

	// ErrInvalidSPIRV is returned for shader blobs that are not SPIR-V.
	ErrInvalidSPIRV = errors.New("triangle: invalid SPIR-V blob")

	// ErrDestroyed is returned by operations on a destroyed context.
	ErrDestroyed = errors.New("triangle: render context destroyed")

	// ErrNilSurface is returned when a context is created without a surface.
	ErrNilSurface = errors.New("triangle: nil surface")
)
