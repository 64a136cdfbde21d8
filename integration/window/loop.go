// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/triangle"
	"github.com/gogpu/wgpu/hal"
)

// errNoSurfaceView is returned when the host has no image for this frame.
var errNoSurfaceView = errors.New("window: no surface texture for this frame")

// hostSurface adapts a surface owned by the windowing host. The host
// recreates its swap chain on resize and presents after each draw
// callback; this type hands the host's current view to the renderer.
type hostSurface struct {
	config triangle.SurfaceConfig
	view   hal.TextureView
}

func (s *hostSurface) Configure(_ hal.Device, cfg triangle.SurfaceConfig) error {
	s.config = cfg
	return nil
}

func (s *hostSurface) AcquireTexture() (hal.TextureView, error) {
	if s.view == nil {
		return nil, errNoSurfaceView
	}
	return s.view, nil
}

// Present drops the view; the host presents once the draw callback returns.
func (s *hostSurface) Present() error {
	s.view = nil
	return nil
}

func (s *hostSurface) Unconfigure(hal.Device) {
	s.view = nil
}

// stateFactory builds the State on the first frame, once the host device
// exists.
type stateFactory func(surface triangle.Surface, width, height int) (*triangle.State, error)

// Loop is the per-window frame loop: events go through HandleEvent, one
// Frame call per tick. It stops by calling quit, either on an exit event
// or on the first error.
//
// Loop is safe for concurrent use. gogpu delivers events on the main
// thread and draw callbacks on its render thread.
type Loop struct {
	newState stateFactory
	quit     func()

	mu      sync.Mutex
	surface *hostSurface
	state   *triangle.State
	err     error
	done    bool
}

func newLoop(newState stateFactory, quit func()) *Loop {
	return &Loop{
		newState: newState,
		quit:     quit,
		surface:  &hostSurface{},
	}
}

// HandleEvent routes one window event. Exit events stop the loop, resize
// events reconfigure the surface, everything else goes to State.Input.
func (l *Loop) HandleEvent(ev triangle.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return
	}
	if triangle.IsExitEvent(ev) {
		triangle.Logger().Info("window: exit requested", "event", fmt.Sprintf("%T", ev))
		l.stop(nil)
		return
	}
	if l.state == nil {
		return
	}
	if e, ok := ev.(triangle.Resized); ok {
		if err := l.state.Resize(e.Width, e.Height); err != nil {
			l.stop(err)
		}
		return
	}
	l.state.Input(ev)
}

// Frame renders one tick into view, sized width x height. The surface is
// reconfigured first if the window size changed since the last resize.
func (l *Loop) Frame(view hal.TextureView, width, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done || width <= 0 || height <= 0 {
		return
	}
	if l.state == nil {
		st, err := l.newState(l.surface, width, height)
		if err != nil {
			l.stop(fmt.Errorf("init: %w", err))
			return
		}
		l.state = st
	}

	if w, h := l.state.Context().Size(); int(w) != width || int(h) != height {
		if err := l.state.Resize(width, height); err != nil {
			l.stop(err)
			return
		}
	}

	l.surface.view = view
	l.state.Update()
	if err := l.state.Render(); err != nil {
		l.stop(err)
	}
}

// Close destroys the state. Called from the host's shutdown hook.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != nil {
		l.state.Destroy()
		l.state = nil
	}
}

// Err returns the error that stopped the loop, if any.
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Done reports whether the loop asked the host to quit.
func (l *Loop) Done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// State returns the state, nil before the first frame.
func (l *Loop) State() *triangle.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// stop must be called with l.mu held.
func (l *Loop) stop(err error) {
	if l.err == nil {
		l.err = err
	}
	if err != nil {
		triangle.Logger().Error("window: stopping", "err", err)
	}
	l.done = true
	if l.quit != nil {
		l.quit()
	}
}
