// Package shader generates the fragment programs nodes hand to a GPU backend.
//
// A program is identified by an [Identity]: the node id, the [Operation] and
// the inferred kinds of both operands. Generation is deterministic, so a
// backend can compile each identity once and reuse the result.
//
// Two dialects are produced:
//
//   - [GLSL]: GLSL 1.10 with sampler2D uniforms and texture2D calls.
//   - [WGSL]: WGSL for gogpu/naga, with a texture_2d and a sampler per
//     texture operand and a var<uniform> f32 per scalar operand.
//
// In both dialects a uniform is named after the node input it is bound from,
// so backends bind values by name with no lookup table.
package shader
