// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/nle"
	"github.com/gogpu/nle/cache"
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
	"github.com/gogpu/wgpu/hal"
)

// Name is the backend name reported to nle.
const Name = "native"

// Backend implements nle.Backend on a HAL device and queue.
// It is safe for concurrent use.
type Backend struct {
	device hal.Device
	queue  hal.Queue
	opts   options

	modules *cache.ShardedCache[shader.Identity, hal.ShaderModule]

	mu     sync.RWMutex
	frames map[uint64]frame
	nextID atomic.Uint64

	log    atomic.Pointer[slog.Logger]
	closed atomic.Bool
}

var _ nle.Backend = (*Backend)(nil)

// frame is a texture owned by the backend.
type frame struct {
	tex    hal.Texture
	handle value.Texture
}

// New returns a backend on device and queue.
func New(device hal.Device, queue hal.Queue, opts ...Option) (*Backend, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Backend{
		device:  device,
		queue:   queue,
		opts:    o,
		modules: cache.NewSharded[shader.Identity, hal.ShaderModule](o.cacheCapacity, shader.IdentityHasher),
		frames:  make(map[uint64]frame),
	}
	b.modules.OnEvict(func(id shader.Identity, m hal.ShaderModule) {
		b.device.DestroyShaderModule(m)
		b.logger().Debug("native: released program", "identity", id.String())
	})
	return b, nil
}

// Name implements nle.Backend.
func (b *Backend) Name() string { return Name }

// Init implements nle.Backend. The device is ready once New returns.
func (b *Backend) Init() error {
	if b.isClosed() {
		return ErrClosed
	}
	return nil
}

// Close destroys every cached shader module and owned texture.
func (b *Backend) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	b.modules.Clear()

	b.mu.Lock()
	frames := b.frames
	b.frames = make(map[uint64]frame)
	b.mu.Unlock()
	for _, f := range frames {
		b.device.DestroyTexture(f.tex)
	}
	b.logger().Info("native: backend closed", "textures", len(frames))
}

// SetLogger sets the logger used by this backend. nle.RegisterBackend and
// nle.SetLogger call it.
func (b *Backend) SetLogger(l *slog.Logger) { b.log.Store(l) }

func (b *Backend) logger() *slog.Logger {
	if l := b.log.Load(); l != nil {
		return l
	}
	return nle.Logger()
}

func (b *Backend) isClosed() bool { return b.closed.Load() }

func (b *Backend) label(name string) string {
	if b.opts.label == "" {
		return name
	}
	return b.opts.label + ":" + name
}

// Stats returns the shader module cache counters.
func (b *Backend) Stats() cache.Stats { return b.modules.Stats() }

// Pass is a prepared GPU pass: the compiled program, its output texture and
// the resources bound to each uniform.
type Pass struct {
	Program shader.Program
	Module  hal.ShaderModule
	Target  value.Texture

	// Textures maps texture uniforms to their HAL textures.
	Textures map[string]hal.Texture

	// Scalars maps scalar uniforms to their values.
	Scalars map[string]float32
}

// Prepare validates job, compiles its program and allocates its target.
func (b *Backend) Prepare(job nle.ShaderJob) (*Pass, error) {
	if !job.Params.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidParams, job.Params)
	}

	pass := &Pass{
		Program:  job.Program,
		Textures: make(map[string]hal.Texture),
		Scalars:  make(map[string]float32),
	}
	if err := b.bind(pass, job); err != nil {
		return nil, err
	}

	m, err := b.Compile(job.Program)
	if err != nil {
		return nil, err
	}
	pass.Module = m

	target, err := b.Target(job.Params)
	if err != nil {
		return nil, err
	}
	pass.Target = target
	return pass, nil
}

// bind resolves each uniform of the job's program to a HAL texture or a
// scalar.
func (b *Backend) bind(pass *Pass, job nle.ShaderJob) error {
	for _, u := range job.Program.Uniforms {
		v, ok := job.Binding(u.Name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingBinding, u.Name)
		}

		if u.Kind == value.KindTexture {
			handle, ok := v.Texture()
			if !ok {
				return fmt.Errorf("%w: %s wants texture, got %s", ErrBindingKind, u.Name, v.Kind())
			}
			tex, err := b.lookup(handle.ID)
			if err != nil {
				return fmt.Errorf("%s: %w", u.Name, err)
			}
			pass.Textures[u.Name] = tex
			continue
		}

		f, ok := v.Float()
		if !ok {
			return fmt.Errorf("%w: %s wants float, got %s", ErrBindingKind, u.Name, v.Kind())
		}
		pass.Scalars[u.Name] = f
	}
	return nil
}

// Render implements nle.Backend. It prepares the pass and returns its
// target texture. Each call allocates a new target; the caller frees it
// with Release.
func (b *Backend) Render(job nle.ShaderJob) (value.Texture, error) {
	pass, err := b.Prepare(job)
	if err != nil {
		return value.Texture{}, err
	}
	b.logger().Debug("native: pass prepared",
		"program", job.Program.Identity.Label(),
		"target", pass.Target.ID,
		"textures", len(pass.Textures),
		"scalars", len(pass.Scalars))
	return pass.Target, nil
}
