// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command shaderc compiles every .vert and .frag WGSL source below a
// directory into SPIR-V, writing <name>.spv next to each source.
//
// Usage:
//
//	go run ./cmd/shaderc [-j N] [dir]
//
// dir defaults to "shaders". Invoked by go generate in the root package.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/gogpu/triangle/internal/shaderc"
)

func main() {
	jobs := flag.Int("j", 0, "parallel compile jobs (0 = GOMAXPROCS)")
	flag.Parse()

	root := "shaders"
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	shaders, err := shaderc.Scan(root)
	if err != nil {
		log.Fatalf("shaderc: scan %s: %v", root, err)
	}
	for _, s := range shaders {
		log.Printf("shaderc: %s (%s) -> %s", s.Input, s.Stage, s.Output)
	}

	if err := shaderc.CompileAll(context.Background(), shaders, *jobs); err != nil {
		log.Fatalf("shaderc: %v", err)
	}
	log.Printf("shaderc: compiled %d shader(s)", len(shaders))
}
