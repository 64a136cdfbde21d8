// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import "github.com/gogpu/gputypes"

// Option configures a RenderContext during creation.
//
// Example:
//
//	rc, err := triangle.NewRenderContext(surface, 800, 600,
//	    triangle.WithPresentMode(triangle.PresentModeFifo),
//	    triangle.WithShaderDir("assets/shaders"))
type Option func(*options)

// options holds optional configuration for RenderContext creation.
type options struct {
	backend         gputypes.Backend
	powerPreference gputypes.PowerPreference
	format          gputypes.TextureFormat
	presentMode     PresentMode
	shaderDir       string
	label           string
}

// defaultOptions returns a high-performance, low-latency configuration
// that loads shaders from ./shaders.
func defaultOptions() options {
	return options{
		backend:         gputypes.BackendVulkan,
		powerPreference: gputypes.PowerPreferenceHighPerformance,
		format:          gputypes.TextureFormatBGRA8UnormSrgb,
		presentMode:     PresentModeMailbox,
		shaderDir:       DefaultShaderDir,
		label:           "triangle",
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithBackend selects the hal backend used by NewRenderContext.
// The backend package must be registered, usually by a blank import.
func WithBackend(b gputypes.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithPowerPreference sets the adapter selection preference.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.powerPreference = p
	}
}

// WithFormat sets the surface pixel format. The render pipeline targets
// the same format.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithPresentMode sets the surface present mode.
func WithPresentMode(m PresentMode) Option {
	return func(o *options) {
		o.presentMode = m
	}
}

// WithShaderDir sets the directory holding shader.vert.spv and
// shader.frag.spv.
func WithShaderDir(dir string) Option {
	return func(o *options) {
		o.shaderDir = dir
	}
}

// WithLabel sets the prefix for GPU object labels.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}
