package node

import (
	"fmt"

	"github.com/gogpu/nle/value"
)

// Base holds a node's inputs. Embed it to implement Inputs.
type Base struct {
	inputs []*Input
}

// AddInput appends in. It panics on a duplicate id, since inputs are fixed
// when the node is constructed.
func (b *Base) AddInput(in *Input) {
	for _, existing := range b.inputs {
		if existing.ID() == in.ID() {
			panic(fmt.Sprintf("node: duplicate input id %q", in.ID()))
		}
	}
	b.inputs = append(b.inputs, in)
}

// Inputs returns the inputs in declaration order.
func (b *Base) Inputs() []*Input {
	out := make([]*Input, len(b.inputs))
	copy(out, b.inputs)
	return out
}

// Input returns the input with the given id, or nil.
func (b *Base) Input(id string) *Input {
	for _, in := range b.inputs {
		if in.ID() == id {
			return in
		}
	}
	return nil
}

// Classify returns Shader when any of the tables holds a texture, else
// Normal.
func Classify(tables ...value.Table) Capability {
	for _, t := range tables {
		if value.InferKind(t) == value.KindTexture {
			return Shader
		}
	}
	return Normal
}

// Gather builds the database for one pass of n. Connected inputs receive the
// table returned by upstream; unconnected inputs receive their literal value.
// upstream may be nil when no input is connected.
func Gather(n Node, upstream func(in *Input) value.Table) *value.Database {
	db := value.NewDatabase()
	for _, in := range n.Inputs() {
		if in.IsConnected() && upstream != nil {
			db.Insert(in.ID(), upstream(in))
			continue
		}
		db.Insert(in.ID(), value.NewTable(in.Value()))
	}
	return db
}
