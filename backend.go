package nle

import (
	"errors"
	"sync"

	"github.com/gogpu/nle/render"
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
)

var (
	// ErrFallbackToCPU indicates the backend cannot run this program.
	// The host should run the returned program itself or skip the pass.
	ErrFallbackToCPU = errors.New("nle: backend cannot run program")

	// ErrNoBackend is returned by a GPU pass when no backend is available.
	// The Result still carries the generated program.
	ErrNoBackend = errors.New("nle: no backend registered")
)

// ShaderJob is one GPU pass: a generated program, the value bound to each
// of its uniforms and the frame geometry of the target.
type ShaderJob struct {
	Program  shader.Program
	Bindings map[string]value.Value
	Params   render.VideoParams
}

// Binding returns the value bound to the named uniform.
func (j ShaderJob) Binding(name string) (value.Value, bool) {
	v, ok := j.Bindings[name]
	return v, ok
}

// Backend runs shader jobs on a GPU.
//
// Implementations live in backend packages. A host opts in by registering
// one, typically from its own setup code:
//
//	b, _ := native.New(device, queue)
//	nle.RegisterBackend(b)
type Backend interface {
	// Name returns the backend name (e.g., "native").
	Name() string

	// Init prepares GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// Render runs job and returns the output texture.
	// Returns ErrFallbackToCPU if the program cannot run on this backend.
	// The texture belongs to the caller, who releases it through the
	// backend once the frame is consumed.
	Render(job ShaderJob) (value.Texture, error)
}

var (
	backendMu sync.RWMutex
	current   Backend
)

// RegisterBackend makes b the backend used by processors without an
// explicit one. Init is called first; on failure b is not registered.
// A previously registered backend is closed.
func RegisterBackend(b Backend) error {
	if b == nil {
		return errors.New("nle: backend must not be nil")
	}
	if err := b.Init(); err != nil {
		return err
	}
	propagateLogger(b, Logger())

	backendMu.Lock()
	old := current
	current = b
	backendMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("nle: backend registered", "name", b.Name())
	return nil
}

// CurrentBackend returns the registered backend, or nil if none.
func CurrentBackend() Backend {
	backendMu.RLock()
	b := current
	backendMu.RUnlock()
	return b
}
