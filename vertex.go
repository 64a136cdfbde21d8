// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// vertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec3<f32>) = 12 bytes (location 1)
//
// Total = 24 bytes per vertex.
const vertexStride = 24

// Vertex is one corner of the triangle.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// TriangleVertices is the triangle drawn every frame, in clip space,
// counter-clockwise.
var TriangleVertices = [3]Vertex{
	{Position: [3]float32{0.0, 0.5, 0.0}, Color: [3]float32{1.0, 0.0, 0.0}},
	{Position: [3]float32{-0.5, -0.5, 0.0}, Color: [3]float32{0.0, 1.0, 0.0}},
	{Position: [3]float32{0.5, -0.5, 0.0}, Color: [3]float32{0.0, 0.0, 1.0}},
}

// Triangle returns a copy of TriangleVertices.
func Triangle() []Vertex {
	out := make([]Vertex, len(TriangleVertices))
	copy(out, TriangleVertices[:])
	return out
}

// VertexLayout returns the vertex buffer layout matching Vertex.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}

// EncodeVertices packs vertices into little-endian bytes for upload.
func EncodeVertices(vertices []Vertex) []byte {
	buf := make([]byte, len(vertices)*vertexStride)
	for i := range vertices {
		writeVertex(buf[i*vertexStride:], &vertices[i])
	}
	return buf
}

func writeVertex(buf []byte, v *Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[2]))
}
