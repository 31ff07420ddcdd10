package nle

import (
	"errors"
	"fmt"

	"github.com/gogpu/nle/node"
	"github.com/gogpu/nle/render"
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
)

// Result is the outcome of one pass over a node.
type Result struct {
	// Capability is the classification the pass was dispatched on.
	Capability node.Capability

	// Table is the node's output. For GPU passes it is the merged input
	// table with the rendered texture pushed on top, when one was rendered.
	// That texture is owned by the caller and must be released through the
	// backend that rendered it.
	Table value.Table

	// Program is the generated program. Zero for CPU passes.
	Program shader.Program
}

// Processor runs evaluation passes. It is safe for concurrent use as long
// as the nodes and databases passed to Process are not shared.
type Processor struct {
	opts processorOptions
}

// NewProcessor returns a Processor configured by opts.
func NewProcessor(opts ...Option) *Processor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Processor{opts: o}
}

// Dialect returns the dialect of generated programs.
func (p *Processor) Dialect() shader.Dialect { return p.opts.dialect }

// VideoParams returns the frame geometry passed to the backend.
func (p *Processor) VideoParams() render.VideoParams { return p.opts.params }

// Process classifies n against db and evaluates it on the matching path.
//
// CPU passes return n.Value(db). GPU passes generate the node's program,
// bind its uniforms and hand the job to the backend. When no backend is
// available, or the backend falls back, the Result still carries the
// program and the merged table alongside ErrNoBackend or ErrFallbackToCPU.
func (p *Processor) Process(n node.Node, db *value.Database) (Result, error) {
	capability := n.Capabilities(db)
	log := Logger().With("node", n.ID(), "capability", capability)

	sn, ok := n.(node.ShaderNode)
	if capability == node.Normal || !ok {
		if capability == node.Shader {
			log.Warn("nle: node classified for GPU has no program, running on CPU")
		}
		t, err := n.Value(db)
		if err != nil {
			return Result{Capability: node.Normal}, fmt.Errorf("nle: %s: %w", n.ID(), err)
		}
		log.Debug("nle: cpu pass", "values", t.Len())
		return Result{Capability: node.Normal, Table: t}, nil
	}

	prog, err := sn.ShaderProgram(db, p.opts.dialect)
	if err != nil {
		return Result{Capability: capability}, fmt.Errorf("nle: %s: %w", n.ID(), err)
	}
	res := Result{Capability: capability, Table: db.Merge(), Program: prog}
	log = log.With("program", prog.Identity.Label())

	b := p.opts.backend
	if b == nil {
		b = CurrentBackend()
	}
	if b == nil {
		log.Debug("nle: gpu pass without backend")
		return res, ErrNoBackend
	}

	job := ShaderJob{
		Program:  prog,
		Bindings: Bind(n, prog, db),
		Params:   p.opts.params,
	}
	tex, err := b.Render(job)
	if err != nil {
		if errors.Is(err, ErrFallbackToCPU) {
			log.Warn("nle: backend fell back", "backend", b.Name(), "err", err)
			return res, err
		}
		return res, fmt.Errorf("nle: %s: render: %w", n.ID(), err)
	}
	res.Table.Push(value.TextureValue(tex).WithSource(n.ID()))
	log.Debug("nle: gpu pass", "backend", b.Name(), "texture", tex.ID)
	return res, nil
}

// Bind returns the value bound to each uniform of prog. Each uniform is
// matched to the input with the same id, and the value is chosen from that
// input's table through node.InputValue. When that finds nothing of the
// uniform's kind, a texture uniform takes the table's texture and a scalar
// uniform takes zero, so empty or unset operands never fail the pass.
func Bind(n node.Node, prog shader.Program, db *value.Database) map[string]value.Value {
	bindings := make(map[string]value.Value, len(prog.Uniforms))
	for _, in := range n.Inputs() {
		u, ok := prog.Uniform(in.ID())
		if !ok {
			continue
		}
		t := db.Table(in.ID())
		if v, ok := node.InputValue(n, in, t); ok && v.Kind() == u.Kind {
			bindings[in.ID()] = v
			continue
		}
		if v, ok := fallbackBinding(u, t); ok {
			bindings[in.ID()] = v
		}
	}
	return bindings
}

// fallbackBinding picks a value for u when the node chose none.
func fallbackBinding(u shader.Uniform, t value.Table) (value.Value, bool) {
	switch u.Kind {
	case value.KindTexture:
		return t.Get(value.KindTexture)
	case value.KindFloat:
		if v, ok := t.Get(value.KindFloat); ok {
			return v, true
		}
		return value.Float(0), true
	default:
		return value.Value{}, false
	}
}
