// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/nle"
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/wgpu/hal"
)

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(source string) ([]uint32, error) {
	b, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words, nil
}

// Compile returns the shader module for p, compiling it on first use.
// Programs with the same identity share one module.
//
// GLSL programs fail with ErrUnsupportedDialect, which also matches
// nle.ErrFallbackToCPU.
func (b *Backend) Compile(p shader.Program) (hal.ShaderModule, error) {
	if p.Dialect != shader.WGSL {
		return nil, fmt.Errorf("%w %s: %w", ErrUnsupportedDialect, p.Dialect, nle.ErrFallbackToCPU)
	}
	if b.isClosed() {
		return nil, ErrClosed
	}

	return b.modules.GetOrCreate(p.Identity, func() (hal.ShaderModule, error) {
		words, err := compileSPIRV(p.Source)
		if err != nil {
			return nil, fmt.Errorf("native: compile %s: %w", p.Identity, err)
		}
		m, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  b.label(p.Identity.Label()),
			Source: hal.ShaderSource{SPIRV: words},
		})
		if err != nil {
			return nil, fmt.Errorf("native: create shader module %s: %w", p.Identity, err)
		}
		b.logger().Debug("native: compiled program", "identity", p.Identity.String(), "words", len(words))
		return m, nil
	})
}
