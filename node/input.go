package node

import "github.com/gogpu/nle/value"

// Input is a typed slot on a node. It either holds a literal value or is
// connected to an upstream node whose output table feeds it.
//
// An Input belongs to exactly one node. It is not safe to mutate an input
// while the node is being evaluated.
type Input struct {
	id       string
	name     string
	dataType value.Kind
	literal  value.Value
	upstream Node
}

// NewInput returns an unconnected input. The display name defaults to id.
func NewInput(id string, dataType value.Kind) *Input {
	return &Input{id: id, name: id, dataType: dataType}
}

// ID returns the input identifier. Generated programs name uniforms after it.
func (in *Input) ID() string { return in.id }

// Name returns the display name.
func (in *Input) Name() string { return in.name }

// SetName sets the display name.
func (in *Input) SetName(name string) { in.name = name }

// DataType returns the declared kind.
func (in *Input) DataType() value.Kind { return in.dataType }

// Value returns the literal value.
func (in *Input) Value() value.Value { return in.literal }

// SetValue sets the literal value used while the input is unconnected.
func (in *Input) SetValue(v value.Value) { in.literal = v }

// Connect feeds the input from n.
func (in *Input) Connect(n Node) { in.upstream = n }

// Disconnect removes the upstream connection.
func (in *Input) Disconnect() { in.upstream = nil }

// IsConnected reports whether the input has an upstream node.
func (in *Input) IsConnected() bool { return in.upstream != nil }

// Upstream returns the connected node, or nil.
func (in *Input) Upstream() Node { return in.upstream }
