// Package node defines compositing graph nodes and how they choose between
// CPU evaluation and GPU shader programs.
//
// Every evaluation pass starts with a [value.Database] holding one table per
// input. The node reports its [Capability] for that database: [Normal] nodes
// are evaluated with Value, [Shader] nodes produce a program that a GPU
// backend runs. The decision is recomputed on every pass because upstream
// connections and kinds change between passes.
package node

import (
	"errors"

	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
	"golang.org/x/text/message"
)

// ErrUnsupportedCombination is returned when a node cannot combine the kinds
// found on its inputs.
var ErrUnsupportedCombination = errors.New("node: unsupported input combination")

// Capability is the execution path a node needs for one pass.
type Capability uint8

const (
	// Normal nodes are evaluated on the CPU.
	Normal Capability = iota
	// Shader nodes are evaluated by a GPU backend running a generated program.
	Shader
)

// String returns "cpu" or "gpu".
func (c Capability) String() string {
	if c == Shader {
		return "gpu"
	}
	return "cpu"
}

// Node is a unit of the compositing graph.
//
// Implementations must not mutate the database they are given and must not
// keep state between passes other than their inputs.
type Node interface {
	// Name is the human-readable node name.
	Name() string

	// ID is a stable identifier, e.g. "org.olivevideoeditor.Olive.math".
	ID() string

	// Category groups nodes in catalogs.
	Category() string

	// Description is a one-line summary.
	Description() string

	// Inputs returns the input slots in declaration order.
	Inputs() []*Input

	// Capabilities classifies the pass described by db.
	Capabilities(db *value.Database) Capability

	// Value runs the CPU path and returns the node's output table.
	Value(db *value.Database) (value.Table, error)
}

// ShaderNode is a Node that can produce GPU programs.
type ShaderNode interface {
	Node

	// ShaderIdentity returns the cache key of the program for db.
	ShaderIdentity(db *value.Database) shader.Identity

	// ShaderProgram returns the program for db in dialect d.
	ShaderProgram(db *value.Database, d shader.Dialect) (shader.Program, error)
}

// InputValuer is implemented by nodes that choose which entry of an input's
// table is bound to the input.
type InputValuer interface {
	InputValueFromTable(in *Input, t value.Table) (value.Value, bool)
}

// Translatable is implemented by nodes whose input names are localized.
type Translatable interface {
	Retranslate(p *message.Printer)
}

// InputValue returns the value bound to in for table t, asking n first when
// it implements InputValuer.
func InputValue(n Node, in *Input, t value.Table) (value.Value, bool) {
	if iv, ok := n.(InputValuer); ok {
		return iv.InputValueFromTable(in, t)
	}
	return DefaultInputValue(in, t)
}

// DefaultInputValue returns the most recent entry of the input's declared kind.
func DefaultInputValue(in *Input, t value.Table) (value.Value, bool) {
	return t.Get(in.DataType())
}
