// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// State ties the render context, the renderer and the cursor together.
// It is what the frame loop drives: Input on every event, then Update and
// Render once per tick.
type State struct {
	rc       *RenderContext
	renderer *Renderer
	cursor   Cursor
}

// NewState creates a State on a context that opens its own device.
func NewState(surface Surface, width, height int, opts ...Option) (*State, error) {
	rc, err := NewRenderContext(surface, width, height, opts...)
	if err != nil {
		return nil, err
	}
	return newState(rc)
}

// NewStateWithDevice creates a State on a device owned by the host.
func NewStateWithDevice(device hal.Device, queue hal.Queue, surface Surface, width, height int, opts ...Option) (*State, error) {
	rc, err := NewRenderContextWithDevice(device, queue, surface, width, height, opts...)
	if err != nil {
		return nil, err
	}
	return newState(rc)
}

func newState(rc *RenderContext) (*State, error) {
	r, err := NewRenderer(rc)
	if err != nil {
		rc.Destroy()
		return nil, err
	}
	return &State{rc: rc, renderer: r}, nil
}

// Resize reconfigures the surface for the new window size.
func (s *State) Resize(width, height int) error {
	return s.rc.Resize(width, height)
}

// Input consumes pointer moves and reports whether ev was handled.
func (s *State) Input(ev Event) bool {
	if e, ok := ev.(CursorMoved); ok {
		s.cursor = Cursor{X: e.X, Y: e.Y, Valid: true}
		return true
	}
	return false
}

// Update is the per-tick hook; the scene is static.
func (s *State) Update() {}

// Render draws one frame.
func (s *State) Render() error {
	return s.renderer.Render(s.ClearColor())
}

// ClearColor returns the color the next frame clears to.
func (s *State) ClearColor() gputypes.Color {
	w, h := s.rc.Size()
	return ClearColor(s.cursor, w, h)
}

// Cursor returns the last known pointer position.
func (s *State) Cursor() Cursor { return s.cursor }

// Context returns the render context.
func (s *State) Context() *RenderContext { return s.rc }

// Renderer returns the frame renderer.
func (s *State) Renderer() *Renderer { return s.renderer }

// Destroy releases the renderer and then the context.
func (s *State) Destroy() {
	s.renderer.Destroy()
	s.rc.Destroy()
}
