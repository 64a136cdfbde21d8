// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shaderc compiles the WGSL shader sources of the repository into
// SPIR-V at build time.
//
// Stage is chosen by file extension: .vert is a vertex shader, .frag a
// fragment shader. Compiled output is written next to the source with
// .spv appended (shader.vert -> shader.vert.spv). Any other extension
// aborts the build.
package shaderc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/gogpu/naga"
	"golang.org/x/sync/errgroup"
)

// OutputExt is appended to every compiled shader.
const OutputExt = ".spv"

// ErrUnknownExtension is returned by Scan for files it cannot classify.
var ErrUnknownExtension = errors.New("shaderc: unknown shader extension")

// ErrStageMismatch is returned when a source lacks the entry point
// attribute its extension promises.
var ErrStageMismatch = errors.New("shaderc: shader stage does not match extension")

// Stage is a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// attribute is the WGSL entry point attribute for the stage.
func (s Stage) attribute() string {
	if s == StageFragment {
		return "@fragment"
	}
	return "@vertex"
}

// StageForExt maps a file extension (with or without the dot) to a stage.
func StageForExt(ext string) (Stage, error) {
	switch strings.TrimPrefix(ext, ".") {
	case "vert":
		return StageVertex, nil
	case "frag":
		return StageFragment, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
}

// Shader is one source file scheduled for compilation.
type Shader struct {
	Input  string
	Output string
	Stage  Stage
}

// NewShader classifies input by its extension.
func NewShader(input string) (Shader, error) {
	stage, err := StageForExt(filepath.Ext(input))
	if err != nil {
		return Shader{}, fmt.Errorf("%s: %w", input, err)
	}
	return Shader{
		Input:  input,
		Output: input + OutputExt,
		Stage:  stage,
	}, nil
}

// Scan walks root recursively and returns every shader source below it,
// sorted by path. Compiled outputs (*.spv) and files without an extension
// are skipped; any other unknown extension is an error.
func Scan(root string) ([]Shader, error) {
	var shaders []Shader
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext == "" || ext == OutputExt {
			return nil
		}
		s, err := NewShader(path)
		if err != nil {
			return err
		}
		shaders = append(shaders, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(shaders, func(i, j int) bool { return shaders[i].Input < shaders[j].Input })
	return shaders, nil
}

// Compile translates one WGSL source to SPIR-V and writes the output file.
func Compile(s Shader) error {
	src, err := os.ReadFile(filepath.Clean(s.Input))
	if err != nil {
		return fmt.Errorf("read %s: %w", s.Input, err)
	}
	spirv, err := CompileSource(string(src), s.Stage)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Input, err)
	}
	if err := os.WriteFile(s.Output, spirv, 0o644); err != nil { //nolint:gosec // build artifact
		return fmt.Errorf("write %s: %w", s.Output, err)
	}
	return nil
}

// CompileSource compiles WGSL source for stage to SPIR-V bytes.
func CompileSource(source string, stage Stage) ([]byte, error) {
	if !strings.Contains(source, stage.attribute()) {
		return nil, fmt.Errorf("%w: no %s entry point", ErrStageMismatch, stage.attribute())
	}
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", stage, err)
	}
	return spirv, nil
}

// CompileAll compiles shaders concurrently with at most limit workers
// (GOMAXPROCS when limit <= 0). The first failure cancels the rest.
func CompileAll(ctx context.Context, shaders []Shader, limit int) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, s := range shaders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Compile(s)
		})
	}
	return g.Wait()
}
