// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package triangle draws a single colored triangle with gogpu/wgpu and
// clears the background to a color that follows the cursor.
//
// # Overview
//
// The package is split along the frame lifecycle:
//
//   - RenderContext: device, queue and presentation Surface plus its
//     configuration. Created once, resized with the window.
//   - Renderer: one render pass per frame. Clear, draw three vertices,
//     submit, present.
//   - State: glues both to the cursor. The frame loop calls Input for
//     every event and Render once per tick.
//
// # Quick Start
//
//	surface := triangle.NewOffscreenSurface()
//	st, err := triangle.NewState(surface, 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Destroy()
//
//	st.Input(triangle.CursorMoved{X: 400, Y: 300})
//	if err := st.Render(); err != nil { // clears to (0.5, 0.5, 0.3, 1)
//	    log.Fatal(err)
//	}
//
// For a window, see the integration/window package and cmd/triangle.
//
// # Shaders
//
// Shaders are WGSL sources under shaders/ compiled to SPIR-V at build time
// by cmd/shaderc (run go generate). At startup the renderer loads
// shaders/shader.vert.spv and shaders/shader.frag.spv as opaque blobs.
//
// # Errors
//
// Every failure is fatal for the demo. Library functions return wrapped
// errors; cmd/triangle exits on the first one.
package triangle
