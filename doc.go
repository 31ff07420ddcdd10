// Package nle evaluates nodes of a non-linear video editor's node graph and
// decides, per pass, whether a node runs on the CPU or as a generated GPU
// fragment program.
//
// # Overview
//
// A pass starts from a [value.Database]: one [value.Table] per input of the
// node, built by [node.Gather]. The node classifies itself against the
// database. Tables that carry a texture send the node to the GPU; anything
// else stays on the CPU.
//
//	db := node.Gather(math, upstream)
//	res, err := nle.NewProcessor().Process(math, db)
//	switch {
//	case errors.Is(err, nle.ErrNoBackend):
//	    // run res.Program on the host's own pipeline
//	case err != nil:
//	    return err
//	}
//
// # Backends
//
// GPU passes are handed to a [Backend]. The backend in backend/native
// compiles WGSL programs with naga and runs them on a wgpu HAL device.
// Without a registered backend a GPU pass still returns its program.
//
// # Logging
//
// nle is silent by default. See [SetLogger].
//
// # Architecture
//
// The module is organized into:
//   - value: kinds, values, tables, type inference
//   - node: node interfaces, inputs, capability classification
//   - node/mathnode: the Math node
//   - shader: operations, program identities, program generation
//   - render: frame geometry
//   - cache: sharded LRU used by backends
//   - backend/native: wgpu HAL backend
//   - catalog: node factories and localized node strings
package nle
