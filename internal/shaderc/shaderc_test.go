// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaderc

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	vertexWGSL = `@vertex
fn main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 1.0);
}
`
	fragmentWGSL = `@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`
)

func TestStageForExt(t *testing.T) {
	tests := []struct {
		ext     string
		want    Stage
		wantErr bool
	}{
		{".vert", StageVertex, false},
		{"vert", StageVertex, false},
		{".frag", StageFragment, false},
		{".comp", 0, true},
		{".spv", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := StageForExt(tt.ext)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownExtension) {
				t.Errorf("StageForExt(%q) error = %v, want ErrUnknownExtension", tt.ext, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("StageForExt(%q) = %v, %v; want %v", tt.ext, got, err, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	if StageVertex.String() != "vertex" || StageFragment.String() != "fragment" {
		t.Errorf("unexpected stage names %q %q", StageVertex, StageFragment)
	}
	if got := Stage(7).String(); got != "Stage(7)" {
		t.Errorf("Stage(7).String() = %q", got)
	}
}

func TestNewShader(t *testing.T) {
	s, err := NewShader(filepath.Join("shaders", "shader.frag"))
	if err != nil {
		t.Fatalf("NewShader() error = %v", err)
	}
	if s.Stage != StageFragment {
		t.Errorf("Stage = %v, want fragment", s.Stage)
	}
	if want := filepath.Join("shaders", "shader.frag.spv"); s.Output != want {
		t.Errorf("Output = %q, want %q", s.Output, want)
	}

	if _, err := NewShader("shader.glsl"); !errors.Is(err, ErrUnknownExtension) {
		t.Errorf("NewShader(glsl) error = %v, want ErrUnknownExtension", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.vert"), vertexWGSL)
	writeFile(t, filepath.Join(root, "a.frag"), fragmentWGSL)
	writeFile(t, filepath.Join(root, "nested", "deep", "c.vert"), vertexWGSL)
	writeFile(t, filepath.Join(root, "a.frag.spv"), "stale")
	writeFile(t, filepath.Join(root, "README"), "notes")

	shaders, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a.frag"),
		filepath.Join(root, "b.vert"),
		filepath.Join(root, "nested", "deep", "c.vert"),
	}
	if len(shaders) != len(want) {
		t.Fatalf("Scan() found %d shaders, want %d: %+v", len(shaders), len(want), shaders)
	}
	for i, s := range shaders {
		if s.Input != want[i] {
			t.Errorf("shader %d = %q, want %q", i, s.Input, want[i])
		}
	}
}

func TestScanUnknownExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shader.vert"), vertexWGSL)
	writeFile(t, filepath.Join(root, "shader.tesc"), "")

	if _, err := Scan(root); !errors.Is(err, ErrUnknownExtension) {
		t.Errorf("Scan() error = %v, want ErrUnknownExtension", err)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestCompileSourceStageMismatch(t *testing.T) {
	if _, err := CompileSource(fragmentWGSL, StageVertex); !errors.Is(err, ErrStageMismatch) {
		t.Errorf("error = %v, want ErrStageMismatch", err)
	}
	if _, err := CompileSource(vertexWGSL, StageFragment); !errors.Is(err, ErrStageMismatch) {
		t.Errorf("error = %v, want ErrStageMismatch", err)
	}
}

// skipUnsupported skips when the compiler reports a feature it does not
// implement yet.
func skipUnsupported(t *testing.T, err error) {
	t.Helper()
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("naga feature not yet implemented: %v", err)
	}
}

func checkMagic(t *testing.T, spirv []byte) {
	t.Helper()
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		t.Fatalf("SPIR-V length %d is not a positive multiple of 4", len(spirv))
	}
	if magic := binary.LittleEndian.Uint32(spirv); magic != 0x07230203 {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", magic)
	}
}

func TestCompileRepositoryShaders(t *testing.T) {
	shaders, err := Scan(filepath.Join("..", "..", "shaders"))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(shaders) != 2 {
		t.Fatalf("found %d shaders, want 2", len(shaders))
	}

	for _, s := range shaders {
		t.Run(filepath.Base(s.Input), func(t *testing.T) {
			src, err := os.ReadFile(s.Input)
			if err != nil {
				t.Fatal(err)
			}
			spirv, err := CompileSource(string(src), s.Stage)
			if err != nil {
				skipUnsupported(t, err)
				t.Fatalf("CompileSource() error = %v", err)
			}
			checkMagic(t, spirv)
		})
	}
}

func TestCompileAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shader.vert"), vertexWGSL)
	writeFile(t, filepath.Join(root, "shader.frag"), fragmentWGSL)

	shaders, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := CompileAll(context.Background(), shaders, 0); err != nil {
		skipUnsupported(t, err)
		t.Fatalf("CompileAll() error = %v", err)
	}

	for _, s := range shaders {
		data, err := os.ReadFile(s.Output)
		if err != nil {
			t.Fatalf("missing output %s: %v", s.Output, err)
		}
		checkMagic(t, data)
	}

	// Outputs must not be picked up as sources on a rescan.
	again, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(shaders) {
		t.Errorf("rescan found %d shaders, want %d", len(again), len(shaders))
	}
}

func TestCompileAllStopsOnError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bad.vert"), fragmentWGSL)

	shaders, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := CompileAll(context.Background(), shaders, 1); !errors.Is(err, ErrStageMismatch) {
		t.Errorf("CompileAll() error = %v, want ErrStageMismatch", err)
	}
	if _, err := os.Stat(filepath.Join(root, "bad.vert.spv")); !os.IsNotExist(err) {
		t.Error("failed compile must not write output")
	}
}

func TestCompileAllCanceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shader.vert"), vertexWGSL)
	shaders, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := CompileAll(ctx, shaders, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("CompileAll() error = %v, want context.Canceled", err)
	}
}
