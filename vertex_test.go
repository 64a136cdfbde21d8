// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTriangleVertices(t *testing.T) {
	if len(TriangleVertices) != 3 {
		t.Fatalf("len(TriangleVertices) = %d, want 3", len(TriangleVertices))
	}

	want := [3]Vertex{
		{Position: [3]float32{0.0, 0.5, 0.0}, Color: [3]float32{1.0, 0.0, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}, Color: [3]float32{0.0, 1.0, 0.0}},
		{Position: [3]float32{0.5, -0.5, 0.0}, Color: [3]float32{0.0, 0.0, 1.0}},
	}
	if TriangleVertices != want {
		t.Errorf("TriangleVertices = %+v, want %+v", TriangleVertices, want)
	}
}

func TestTriangleReturnsCopy(t *testing.T) {
	v := Triangle()
	if len(v) != 3 {
		t.Fatalf("len(Triangle()) = %d, want 3", len(v))
	}
	v[0].Position[0] = 42
	v[2].Color = [3]float32{9, 9, 9}

	if TriangleVertices[0].Position[0] != 0 {
		t.Error("modifying Triangle() result changed TriangleVertices")
	}
	if TriangleVertices[2].Color != [3]float32{0, 0, 1} {
		t.Error("modifying Triangle() result changed TriangleVertices")
	}
}

func TestEncodeVertices(t *testing.T) {
	data := EncodeVertices(TriangleVertices[:])
	if len(data) != 3*vertexStride {
		t.Fatalf("len = %d, want %d", len(data), 3*vertexStride)
	}

	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
	}

	for i, v := range TriangleVertices {
		base := i * vertexStride
		for j := 0; j < 3; j++ {
			if got := readF32(base + j*4); got != v.Position[j] {
				t.Errorf("vertex %d position[%d] = %v, want %v", i, j, got, v.Position[j])
			}
			if got := readF32(base + 12 + j*4); got != v.Color[j] {
				t.Errorf("vertex %d color[%d] = %v, want %v", i, j, got, v.Color[j])
			}
		}
	}
}

func TestEncodeVerticesEmpty(t *testing.T) {
	if got := EncodeVertices(nil); len(got) != 0 {
		t.Errorf("EncodeVertices(nil) len = %d, want 0", len(got))
	}
}

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != vertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, vertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(l.Attributes))
	}
	for i, a := range l.Attributes {
		if a.Format != gputypes.VertexFormatFloat32x3 {
			t.Errorf("attribute %d format = %v, want Float32x3", i, a.Format)
		}
		if int(a.ShaderLocation) != i {
			t.Errorf("attribute %d location = %d, want %d", i, a.ShaderLocation, i)
		}
	}
	if l.Attributes[1].Offset != 12 {
		t.Errorf("color offset = %d, want 12", l.Attributes[1].Offset)
	}
}
