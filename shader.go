// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"
	"os"
	"path/filepath"
)

//go:generate go run ./cmd/shaderc shaders

// DefaultShaderDir is where the compiled shaders are looked up, relative
// to the working directory.
const DefaultShaderDir = "shaders"

// Compiled shader artifact names inside the shader directory.
const (
	VertexShaderFile   = "shader.vert.spv"
	FragmentShaderFile = "shader.frag.spv"
)

// ShaderEntryPoint is the entry point of both shader modules.
const ShaderEntryPoint = "main"

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// LoadShader reads a compiled SPIR-V module from path.
func LoadShader(path string) ([]uint32, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", path, err)
	}
	code, err := DecodeSPIRV(data)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", path, err)
	}
	return code, nil
}

// DecodeSPIRV converts a little-endian SPIR-V blob to words.
func DecodeSPIRV(data []byte) ([]uint32, error) {
	if len(data) == 0 || len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of 4", ErrInvalidSPIRV, len(data))
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(data)/4)
	for i := range code {
		code[i] = uint32(data[i*4]) |
			uint32(data[i*4+1])<<8 |
			uint32(data[i*4+2])<<16 |
			uint32(data[i*4+3])<<24
	}
	if code[0] != spirvMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%08x", ErrInvalidSPIRV, code[0])
	}
	return code, nil
}

// shaderSet holds both stages of the triangle program.
type shaderSet struct {
	vertex   []uint32
	fragment []uint32
}

// loadShaderSet loads both compiled stages from dir.
func loadShaderSet(dir string) (*shaderSet, error) {
	vs, err := LoadShader(filepath.Join(dir, VertexShaderFile))
	if err != nil {
		return nil, err
	}
	fs, err := LoadShader(filepath.Join(dir, FragmentShaderFile))
	if err != nil {
		return nil, err
	}
	return &shaderSet{vertex: vs, fragment: fs}, nil
}
