// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// RenderContext owns the device, its queue and the presentation surface
// together with the surface configuration. It is created once, resized on
// window-resize events and destroyed at exit.
//
// RenderContext is not safe for concurrent use; the frame loop owns it.
type RenderContext struct {
	instance hal.Instance // nil when the device is borrowed
	device   hal.Device
	queue    hal.Queue
	surface  Surface
	config   SurfaceConfig

	opts      options
	adapter   string
	ownDevice bool
	suspended bool
	destroyed bool
}

// NewRenderContext opens a device on the configured backend, picking the
// adapter by power preference, and configures surface to width x height.
func NewRenderContext(surface Surface, width, height int, opts ...Option) (*RenderContext, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	o := buildOptions(opts)

	dev, err := openDevice(o.backend, o.powerPreference)
	if err != nil {
		return nil, err
	}
	return newRenderContext(dev, true, surface, width, height, o)
}

// NewRenderContextWithDevice builds a context around a device owned by
// someone else, typically the windowing host. Destroy leaves the device
// alive.
func NewRenderContextWithDevice(device hal.Device, queue hal.Queue, surface Surface, width, height int, opts ...Option) (*RenderContext, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("triangle: nil device or queue")
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	dev := &openedDevice{device: device, queue: queue, adapter: "shared"}
	return newRenderContext(dev, false, surface, width, height, buildOptions(opts))
}

func newRenderContext(dev *openedDevice, own bool, surface Surface, width, height int, o options) (*RenderContext, error) {
	rc := &RenderContext{
		instance:  dev.instance,
		device:    dev.device,
		queue:     dev.queue,
		surface:   surface,
		opts:      o,
		adapter:   dev.adapter,
		ownDevice: own,
		config: SurfaceConfig{
			Format:      o.format,
			PresentMode: o.presentMode,
		},
	}
	if err := rc.Resize(width, height); err != nil {
		rc.Destroy()
		return nil, err
	}
	Logger().Info("triangle: render context created",
		"adapter", rc.adapter,
		"width", rc.config.Width,
		"height", rc.config.Height,
		"present_mode", rc.config.PresentMode.String())
	return rc, nil
}

// Resize stores the new size and reconfigures the surface to match.
// It must be called before the next frame is rendered. A zero-area size
// suspends rendering until a non-zero size arrives.
func (rc *RenderContext) Resize(width, height int) error {
	if rc.destroyed {
		return ErrDestroyed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("triangle: invalid size %dx%d", width, height)
	}

	cfg := rc.config
	cfg.Width = uint32(width)   //nolint:gosec // checked non-negative
	cfg.Height = uint32(height) //nolint:gosec // checked non-negative

	if width == 0 || height == 0 {
		rc.config = cfg
		rc.suspended = true
		Logger().Debug("triangle: surface suspended", "width", width, "height", height)
		return nil
	}

	// The stored size only changes once the surface has taken it.
	if err := rc.surface.Configure(rc.device, cfg); err != nil {
		return fmt.Errorf("configure surface %dx%d: %w", width, height, err)
	}
	rc.config = cfg
	rc.suspended = false
	Logger().Info("triangle: surface configured", "width", width, "height", height)
	return nil
}

// Size returns the configured surface size.
func (rc *RenderContext) Size() (width, height uint32) {
	return rc.config.Width, rc.config.Height
}

// Config returns the current surface configuration.
func (rc *RenderContext) Config() SurfaceConfig { return rc.config }

// Format returns the surface pixel format.
func (rc *RenderContext) Format() gputypes.TextureFormat { return rc.config.Format }

// Suspended reports whether the surface has a zero-area size.
func (rc *RenderContext) Suspended() bool { return rc.suspended }

// Device returns the hal device.
func (rc *RenderContext) Device() hal.Device { return rc.device }

// Queue returns the submission queue.
func (rc *RenderContext) Queue() hal.Queue { return rc.queue }

// Surface returns the presentation surface.
func (rc *RenderContext) Surface() Surface { return rc.surface }

// Destroy releases the surface configuration and, when the context opened
// the device itself, the device and instance. Safe to call repeatedly.
func (rc *RenderContext) Destroy() {
	if rc.destroyed {
		return
	}
	rc.destroyed = true

	if rc.surface != nil && rc.device != nil {
		rc.surface.Unconfigure(rc.device)
	}
	if rc.ownDevice && rc.device != nil {
		rc.device.Destroy()
	}
	if rc.instance != nil {
		rc.instance.Destroy()
		rc.instance = nil
	}
	rc.device = nil
	rc.queue = nil
}
