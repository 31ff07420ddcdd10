// Package native runs generated programs on a gogpu/wgpu HAL device.
//
// A Backend compiles WGSL programs to SPIR-V with naga and caches the
// resulting shader modules by program identity, so every distinct node
// configuration compiles once. It owns the frame textures it allocates and
// resolves the texture and scalar bindings of each job against them.
//
// The backend prepares a pass: compiled module, target texture and bound
// resources. Recording the draw into the host's command stream is left to
// the host, which owns the vertex stage and the pipeline layout.
//
//	b, err := native.New(device, queue, native.WithCacheCapacity(32))
//	if err != nil {
//	    return err
//	}
//	if err := nle.RegisterBackend(b); err != nil {
//	    return err
//	}
package native
