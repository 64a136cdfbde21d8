// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import "github.com/gogpu/gputypes"

// DefaultClearColor is used until the first pointer event arrives.
var DefaultClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// Cursor is the last known pointer position in physical pixels.
// The zero value means no pointer event has been seen yet.
type Cursor struct {
	X, Y  float64
	Valid bool
}

// ClearColor maps the cursor onto the background color: red follows the
// horizontal position, green the vertical one. Values are not clamped,
// a cursor outside the window yields channels outside [0, 1].
func ClearColor(c Cursor, width, height uint32) gputypes.Color {
	if !c.Valid || width == 0 || height == 0 {
		return DefaultClearColor
	}
	return gputypes.Color{
		R: c.X / float64(width),
		G: c.Y / float64(height),
		B: 0.3,
		A: 1.0,
	}
}
