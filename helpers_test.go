// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// fakeSPIRV is a header-only SPIR-V module; the noop device accepts it.
func fakeSPIRV() []uint32 {
	return []uint32{spirvMagic, 0x00010000, 0, 1, 0}
}

func testShaders() *shaderSet {
	return &shaderSet{vertex: fakeSPIRV(), fragment: fakeSPIRV()}
}

// writeShaderDir writes both fake compiled shaders into a temp dir.
func writeShaderDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	words := fakeSPIRV()
	data := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}
	for _, name := range []string{VertexShaderFile, FragmentShaderFile} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// newTestState builds a State on a noop device with an offscreen surface.
func newTestState(t *testing.T, width, height int) (*State, *OffscreenSurface) {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)

	surface := NewOffscreenSurface()
	rc, err := NewRenderContextWithDevice(device, queue, surface, width, height)
	if err != nil {
		t.Fatalf("NewRenderContextWithDevice: %v", err)
	}
	r, err := newRendererWithShaders(rc, testShaders())
	if err != nil {
		rc.Destroy()
		t.Fatalf("newRendererWithShaders: %v", err)
	}
	st := &State{rc: rc, renderer: r}
	t.Cleanup(st.Destroy)
	return st, surface
}

// colorsEqual compares colors with a small tolerance.
func colorsEqual(a, b gputypes.Color) bool {
	const eps = 1e-9
	near := func(x, y float64) bool {
		d := x - y
		return d < eps && d > -eps
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}
