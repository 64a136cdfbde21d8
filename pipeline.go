// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// trianglePipeline owns the GPU objects needed to draw the triangle.
type trianglePipeline struct {
	device hal.Device

	vsModule   hal.ShaderModule
	fsModule   hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	vertexBuf   hal.Buffer
	vertexCount uint32
}

// newTrianglePipeline compiles both shader stages into a render pipeline
// targeting format and uploads the triangle vertices.
func newTrianglePipeline(device hal.Device, queue hal.Queue, shaders *shaderSet, format gputypes.TextureFormat, label string) (*trianglePipeline, error) {
	p := &trianglePipeline{device: device}
	if err := p.createPipeline(shaders, format, label); err != nil {
		p.destroy()
		return nil, err
	}
	if err := p.uploadVertices(queue, Triangle(), label); err != nil {
		p.destroy()
		return nil, err
	}
	return p, nil
}

func (p *trianglePipeline) createPipeline(shaders *shaderSet, format gputypes.TextureFormat, label string) error {
	vs, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_vs",
		Source: hal.ShaderSource{SPIRV: shaders.vertex},
	})
	if err != nil {
		return fmt.Errorf("create vertex shader module: %w", err)
	}
	p.vsModule = vs

	fs, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_fs",
		Source: hal.ShaderSource{SPIRV: shaders.fragment},
	})
	if err != nil {
		return fmt.Errorf("create fragment shader module: %w", err)
	}
	p.fsModule = fs

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: label + "_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vsModule,
			EntryPoint: ShaderEntryPoint,
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.fsModule,
			EntryPoint: ShaderEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// uploadVertices creates the vertex buffer and writes vertices into it.
func (p *trianglePipeline) uploadVertices(queue hal.Queue, vertices []Vertex, label string) error {
	data := EncodeVertices(vertices)
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "_vertex_buffer",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	queue.WriteBuffer(buf, 0, data)
	p.vertexBuf = buf
	p.vertexCount = uint32(len(vertices)) //nolint:gosec // three vertices
	return nil
}

// record binds the pipeline and draws all vertices, one instance.
func (p *trianglePipeline) record(rp hal.RenderPassEncoder) {
	if p == nil || p.pipeline == nil || p.vertexBuf == nil {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetVertexBuffer(0, p.vertexBuf, 0)
	rp.Draw(p.vertexCount, 1, 0, 0)
}

// destroy releases all resources in reverse creation order.
func (p *trianglePipeline) destroy() {
	if p == nil || p.device == nil {
		return
	}
	if p.vertexBuf != nil {
		p.device.DestroyBuffer(p.vertexBuf)
		p.vertexBuf = nil
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.fsModule != nil {
		p.device.DestroyShaderModule(p.fsModule)
		p.fsModule = nil
	}
	if p.vsModule != nil {
		p.device.DestroyShaderModule(p.vsModule)
		p.vsModule = nil
	}
}
