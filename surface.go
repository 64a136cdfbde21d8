// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// PresentMode controls how acquired images are queued for display.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank; never tears.
	PresentModeFifo PresentMode = iota
	// PresentModeMailbox replaces the queued image with the newest one.
	PresentModeMailbox
	// PresentModeImmediate presents without waiting; may tear.
	PresentModeImmediate
)

// String returns the mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeMailbox:
		return "mailbox"
	case PresentModeImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("PresentMode(%d)", uint8(m))
	}
}

// SurfaceConfig describes the presentable images of a surface.
type SurfaceConfig struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	PresentMode PresentMode
}

// Surface is a presentation target. The RenderContext configures it on
// creation and after every resize; the Renderer acquires one texture per
// frame, draws into it and presents it.
type Surface interface {
	// Configure (re)creates the swap chain for cfg.
	Configure(device hal.Device, cfg SurfaceConfig) error

	// AcquireTexture returns a view of the next presentable image.
	AcquireTexture() (hal.TextureView, error)

	// Present queues the last acquired image for display.
	Present() error

	// Unconfigure releases the swap chain.
	Unconfigure(device hal.Device)
}

// OffscreenSurface is a Surface backed by a single render-attachment
// texture. Present only counts frames. Use it for headless rendering.
type OffscreenSurface struct {
	device   hal.Device
	config   SurfaceConfig
	texture  hal.Texture
	view     hal.TextureView
	acquired bool
	presents int
}

// NewOffscreenSurface creates an unconfigured offscreen surface.
func NewOffscreenSurface() *OffscreenSurface {
	return &OffscreenSurface{}
}

// Configure recreates the backing texture at the configured size.
func (s *OffscreenSurface) Configure(device hal.Device, cfg SurfaceConfig) error {
	s.Unconfigure(device)

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label: "offscreen_surface",
		Size: hal.Extent3D{
			Width:              cfg.Width,
			Height:             cfg.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        cfg.Format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create offscreen texture: %w", err)
	}

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "offscreen_surface_view",
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("create offscreen texture view: %w", err)
	}

	s.device = device
	s.texture = tex
	s.view = view
	s.config = cfg
	return nil
}

// AcquireTexture returns the backing view.
func (s *OffscreenSurface) AcquireTexture() (hal.TextureView, error) {
	if s.view == nil {
		return nil, fmt.Errorf("offscreen surface not configured")
	}
	s.acquired = true
	return s.view, nil
}

// Present marks the acquired image as presented.
func (s *OffscreenSurface) Present() error {
	if !s.acquired {
		return fmt.Errorf("present without acquired texture")
	}
	s.acquired = false
	s.presents++
	return nil
}

// Unconfigure destroys the backing texture. Safe to call repeatedly.
func (s *OffscreenSurface) Unconfigure(device hal.Device) {
	if device == nil {
		device = s.device
	}
	if device == nil {
		return
	}
	if s.view != nil {
		device.DestroyTextureView(s.view)
		s.view = nil
	}
	if s.texture != nil {
		device.DestroyTexture(s.texture)
		s.texture = nil
	}
	s.acquired = false
}

// Config returns the last applied configuration.
func (s *OffscreenSurface) Config() SurfaceConfig { return s.config }

// Presents returns the number of presented frames.
func (s *OffscreenSurface) Presents() int { return s.presents }
