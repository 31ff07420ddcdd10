// Package mathnode implements the Math node: arithmetic between two operands
// that may be scalars, textures or audio sample buffers.
//
// Textures are combined on the GPU through a generated fragment program.
// Sample buffers are combined on the CPU. Scalars without a texture on the
// other side pass through unchanged.
package mathnode

import (
	"fmt"

	"github.com/gogpu/nle/internal/mix"
	"github.com/gogpu/nle/node"
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ID is the stable identifier of the Math node.
const ID = "org.olivevideoeditor.Olive.math"

// Input ids. Generated programs name their uniforms after ParamA and ParamB.
const (
	Method = "method_in"
	ParamA = "param_a_in"
	ParamB = "param_b_in"
)

// Node is the Math node.
type Node struct {
	node.Base

	method *node.Input
	paramA *node.Input
	paramB *node.Input
}

var (
	_ node.ShaderNode   = (*Node)(nil)
	_ node.InputValuer  = (*Node)(nil)
	_ node.Translatable = (*Node)(nil)
)

// New returns a Math node with unset inputs.
func New() *Node {
	n := &Node{
		method: node.NewInput(Method, value.KindText),
		paramA: node.NewInput(ParamA, value.KindFloat),
		paramB: node.NewInput(ParamB, value.KindFloat),
	}
	n.AddInput(n.method)
	n.AddInput(n.paramA)
	n.AddInput(n.paramB)
	n.Retranslate(message.NewPrinter(language.English))
	return n
}

// Copy returns a new Math node. Input values and connections are not copied.
func (n *Node) Copy() *Node { return New() }

// Name implements node.Node.
func (n *Node) Name() string { return "Math" }

// ID implements node.Node.
func (n *Node) ID() string { return ID }

// Category implements node.Node.
func (n *Node) Category() string { return "Math" }

// Description implements node.Node.
func (n *Node) Description() string {
	return "Perform a mathematical operation between two values."
}

// Retranslate sets the input display names through p.
func (n *Node) Retranslate(p *message.Printer) {
	n.method.SetName(p.Sprintf("Method"))
	n.paramA.SetName(p.Sprintf("Value"))
	n.paramB.SetName(p.Sprintf("Value"))
}

// MethodInput returns the operation input.
func (n *Node) MethodInput() *node.Input { return n.method }

// ParamAInput returns the first operand input.
func (n *Node) ParamAInput() *node.Input { return n.paramA }

// ParamBInput returns the second operand input.
func (n *Node) ParamBInput() *node.Input { return n.paramB }

// Operation returns the operation selected by the method input's table.
// A missing or unknown method selects addition.
func (n *Node) Operation(db *value.Database) shader.Operation {
	v, ok := db.Table(Method).Get(value.KindText)
	if !ok {
		return shader.OpAdd
	}
	s, _ := v.Text()
	return shader.ParseOperation(s)
}

// Capabilities implements node.Node. The node needs the GPU when either
// operand carries a texture.
func (n *Node) Capabilities(db *value.Database) node.Capability {
	return node.Classify(db.Table(ParamA), db.Table(ParamB))
}

// ShaderIdentity implements node.ShaderNode.
func (n *Node) ShaderIdentity(db *value.Database) shader.Identity {
	return shader.Identity{
		NodeID: ID,
		Op:     n.Operation(db),
		KindA:  value.InferKind(db.Table(ParamA)),
		KindB:  value.InferKind(db.Table(ParamB)),
	}
}

// ShaderProgram implements node.ShaderNode. It fails with
// node.ErrUnsupportedCombination when a scalar-typed operand only carries
// audio samples while the other operand is a texture.
func (n *Node) ShaderProgram(db *value.Database, d shader.Dialect) (shader.Program, error) {
	id := n.ShaderIdentity(db)
	if err := checkOperand(ParamA, id.KindA, db.Table(ParamA)); err != nil {
		return shader.Program{}, err
	}
	if err := checkOperand(ParamB, id.KindB, db.Table(ParamB)); err != nil {
		return shader.Program{}, err
	}
	return shader.Generate(id, ParamA, ParamB, d), nil
}

func checkOperand(name string, kind value.Kind, t value.Table) error {
	if kind == value.KindTexture {
		return nil
	}
	if t.Has(value.KindSamples) && !t.Has(value.KindFloat) {
		return fmt.Errorf("%w: %s carries samples, texture expected", node.ErrUnsupportedCombination, name)
	}
	return nil
}

// InputValueFromTable implements node.InputValuer. A connected operand is
// bound to its texture when its table has one.
func (n *Node) InputValueFromTable(in *node.Input, t value.Table) (value.Value, bool) {
	if in.IsConnected() && (in == n.paramA || in == n.paramB) && t.Has(value.KindTexture) {
		return t.Get(value.KindTexture)
	}
	return node.DefaultInputValue(in, t)
}

// Value implements node.Node.
//
// The output is the merge of all input tables. When both operands carry
// sample buffers, the combined buffer is pushed on top, shadowing the input
// samples. Anything else passes through unchanged.
func (n *Node) Value(db *value.Database) (value.Table, error) {
	out := db.Merge()

	va, okA := db.Table(ParamA).Get(value.KindSamples)
	vb, okB := db.Table(ParamB).Get(value.KindSamples)
	if !okA || !okB {
		return out, nil
	}

	a, _ := va.Samples()
	b, _ := vb.Samples()
	mixed := mix.Samples(a, b, n.Operation(db))
	out.Push(value.SamplesValue(mixed).WithSource(ID))
	return out, nil
}
