// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// submitTimeout bounds the wait for a frame's command buffer.
const submitTimeout = 5 * time.Second

// Renderer records and submits one frame at a time against a RenderContext.
// There is no pipelining across frames: Render returns once the frame has
// been submitted, executed and presented.
type Renderer struct {
	rc       *RenderContext
	pipeline *trianglePipeline
	frames   uint64
}

// NewRenderer loads the compiled shaders from the context's shader
// directory and builds the triangle pipeline.
func NewRenderer(rc *RenderContext) (*Renderer, error) {
	shaders, err := loadShaderSet(rc.opts.shaderDir)
	if err != nil {
		return nil, err
	}
	return newRendererWithShaders(rc, shaders)
}

func newRendererWithShaders(rc *RenderContext, shaders *shaderSet) (*Renderer, error) {
	if rc.destroyed {
		return nil, ErrDestroyed
	}
	p, err := newTrianglePipeline(rc.device, rc.queue, shaders, rc.config.Format, rc.opts.label)
	if err != nil {
		return nil, err
	}
	return &Renderer{rc: rc, pipeline: p}, nil
}

// newClearRenderer returns a renderer that only clears; it draws nothing.
func newClearRenderer(rc *RenderContext) *Renderer {
	return &Renderer{rc: rc}
}

// Render acquires the next surface image, clears it to clear, draws the
// triangle when a pipeline is configured, submits and presents.
// A suspended context renders nothing and returns nil.
func (r *Renderer) Render(clear gputypes.Color) error {
	rc := r.rc
	if rc.destroyed {
		return ErrDestroyed
	}
	if rc.suspended {
		return nil
	}

	view, err := rc.surface.AcquireTexture()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquireTimeout, err)
	}
	if view == nil {
		return ErrAcquireTimeout
	}

	if err := r.encodeSubmit(view, clear); err != nil {
		return err
	}

	if err := rc.surface.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	r.frames++
	return nil
}

// encodeSubmit records the single render pass and submits it.
func (r *Renderer) encodeSubmit(view hal.TextureView, clear gputypes.Color) error {
	device, queue := r.rc.device, r.rc.queue

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "render_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("triangle_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "triangle_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	r.pipeline.record(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	// The command buffer is freed on return; it must have executed by then.
	fenceOK, err := device.Wait(fence, 1, submitTimeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !fenceOK {
		return fmt.Errorf("wait for GPU: timeout after %v", submitTimeout)
	}

	Logger().Debug("triangle: frame submitted",
		"frame", r.frames,
		"clear", clear,
		"draw", r.pipeline != nil)
	return nil
}

// Frames returns the number of frames presented so far.
func (r *Renderer) Frames() uint64 { return r.frames }

// HasPipeline reports whether Render draws the triangle.
func (r *Renderer) HasPipeline() bool { return r.pipeline != nil }

// Destroy releases the pipeline and vertex buffer. The context is left
// untouched.
func (r *Renderer) Destroy() {
	if r.pipeline != nil {
		r.pipeline.destroy()
		r.pipeline = nil
	}
}
