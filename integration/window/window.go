// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window runs the triangle demo in a gogpu window.
//
// gogpu owns the OS window, the swap chain and presentation. This package
// unwraps the hal device behind gogpu's *wgpu.Device, feeds the window
// events into a triangle.State and renders one frame per draw callback:
//
//	gogpu.App -> Loop.HandleEvent / Loop.Frame -> triangle.State -> surface
package window

import (
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
)

// Config describes the window.
type Config struct {
	Title     string
	Width     int
	Height    int
	ShaderDir string
}

// DefaultConfig returns an 800x600 window titled "triangle" that loads
// shaders from ./shaders.
func DefaultConfig() Config {
	return Config{
		Title:     "triangle",
		Width:     800,
		Height:    600,
		ShaderDir: triangle.DefaultShaderDir,
	}
}

// WithTitle returns a copy of c with the given title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the given initial size.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithShaderDir returns a copy of c loading shaders from dir.
func (c Config) WithShaderDir(dir string) Config {
	c.ShaderDir = dir
	return c
}

// fallbackFormat is used when the host reports no surface format.
const fallbackFormat = gputypes.TextureFormatBGRA8Unorm

// deviceProvider is the part of gpucontext.DeviceProvider the window uses.
type deviceProvider interface {
	Device() gpucontext.Device
	SurfaceFormat() gputypes.TextureFormat
}

// Run opens the window and blocks until it is closed, Escape is pressed
// or a frame fails. The error that stopped the loop is returned.
func Run(cfg Config) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height))

	provider := func() deviceProvider {
		if p := app.GPUContextProvider(); p != nil {
			return p
		}
		return nil
	}
	loop := newLoop(hostState(provider, cfg.ShaderDir), app.Quit)

	// Sizes and cursor positions are physical pixels; gogpu reports
	// events in logical points.
	app.OnDraw(func(dc *gogpu.Context) {
		width, height := dc.FramebufferSize()
		loop.Frame(halView(dc.SurfaceView()), width, height)
	})

	events := app.EventSource()
	events.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		loop.HandleEvent(triangle.KeyPressed{Key: key})
	})
	events.OnMouseMove(func(x, y float64) {
		loop.HandleEvent(cursorEvent(x, y, app.ScaleFactor()))
	})
	events.OnResize(func(int, int) {
		width, height := app.PhysicalSize()
		loop.HandleEvent(triangle.Resized{Width: width, Height: height})
	})

	app.OnClose(func() {
		loop.HandleEvent(triangle.CloseRequested{})
		loop.Close()
	})

	if err := app.Run(); err != nil {
		return err
	}
	return loop.Err()
}

// hostState returns a factory that builds the State on the host's device,
// targeting the host's surface format. provider is queried on the first
// frame, once gogpu has created its renderer.
func hostState(provider func() deviceProvider, shaderDir string) stateFactory {
	return func(surface triangle.Surface, width, height int) (*triangle.State, error) {
		p := provider()
		device, queue, err := hostDevice(p)
		if err != nil {
			return nil, err
		}
		return triangle.NewStateWithDevice(device, queue, surface, width, height,
			triangle.WithFormat(surfaceFormat(p)),
			triangle.WithShaderDir(shaderDir))
	}
}

// hostDevice unwraps the hal device and queue behind gogpu's *wgpu.Device.
func hostDevice(provider deviceProvider) (hal.Device, hal.Queue, error) {
	if provider == nil {
		return nil, nil, fmt.Errorf("window: no GPU provider")
	}
	dev, ok := provider.Device().(*wgpu.Device)
	if !ok || dev == nil {
		return nil, nil, fmt.Errorf("window: provider device is %T, want *wgpu.Device", provider.Device())
	}
	device := dev.HalDevice()
	if device == nil {
		return nil, nil, fmt.Errorf("window: device has no HAL backend")
	}
	queue := dev.HalQueue()
	if queue == nil {
		return nil, nil, fmt.Errorf("window: device has no HAL queue")
	}
	return device, queue, nil
}

// surfaceFormat returns the host's swap-chain format, or fallbackFormat
// when it reports none.
func surfaceFormat(provider deviceProvider) gputypes.TextureFormat {
	if provider != nil {
		if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	return fallbackFormat
}

// halView unwraps the frame's surface view. A nil view means the host has
// no image this frame.
func halView(view *wgpu.TextureView) hal.TextureView {
	if view == nil {
		return nil
	}
	return view.HalTextureView()
}

// cursorEvent converts a pointer position in logical points to pixels.
func cursorEvent(x, y, scale float64) triangle.CursorMoved {
	if scale <= 0 {
		scale = 1
	}
	return triangle.CursorMoved{X: x * scale, Y: y * scale}
}
