// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command triangle opens a window, draws one colored triangle and clears
// the background to a color that follows the cursor. Escape or closing
// the window exits.
//
// Compiled shaders are read from ./shaders; run go generate in the module
// root first.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/integration/window"
)

func main() {
	triangle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := window.Run(window.DefaultConfig()); err != nil {
		log.Fatalf("triangle: %v", err)
	}
}
