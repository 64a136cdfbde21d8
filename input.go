// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Event is a window-system event delivered to the frame loop.
type Event interface {
	isEvent()
}

// CursorMoved reports the pointer position in physical pixels.
type CursorMoved struct {
	X, Y float64
}

// KeyPressed reports a key press.
type KeyPressed struct {
	Key gpucontext.Key
}

// Resized reports a new physical window size.
type Resized struct {
	Width, Height int
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

func (CursorMoved) isEvent()    {}
func (KeyPressed) isEvent()     {}
func (Resized) isEvent()        {}
func (CloseRequested) isEvent() {}

func (e CursorMoved) String() string { return fmt.Sprintf("CursorMoved(%g, %g)", e.X, e.Y) }
func (e Resized) String() string     { return fmt.Sprintf("Resized(%dx%d)", e.Width, e.Height) }

// IsExitEvent reports whether ev should end the frame loop: a close
// request or the Escape key.
func IsExitEvent(ev Event) bool {
	switch e := ev.(type) {
	case CloseRequested:
		return true
	case KeyPressed:
		return e.Key == gpucontext.KeyEscape
	default:
		return false
	}
}
