// Package catalog maps node ids to node factories and provides the
// localized display strings of each node.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/nle/node"
	"github.com/gogpu/nle/node/mathnode"
)

// ErrUnknownNode is returned by New for ids with no registered factory.
var ErrUnknownNode = errors.New("catalog: unknown node id")

// Registry maps node ids to factories. It is safe for concurrent use.
type Registry struct {
	nodes *gpucontext.Registry[node.Node]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: gpucontext.NewRegistry[node.Node]()}
}

// Default holds every node this module provides.
var Default = func() *Registry {
	r := NewRegistry()
	r.Register(mathnode.ID, func() node.Node { return mathnode.New() })
	return r
}()

// Register sets the factory for id, replacing any previous one.
func (r *Registry) Register(id string, factory func() node.Node) {
	r.nodes.Register(id, factory)
}

// Has reports whether id has a factory.
func (r *Registry) Has(id string) bool { return r.nodes.Has(id) }

// New returns a fresh node for id.
func (r *Registry) New(id string) (node.Node, error) {
	if !r.nodes.Has(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	n := r.nodes.Get(id)
	if n == nil {
		return nil, fmt.Errorf("%w: %q has a nil factory result", ErrUnknownNode, id)
	}
	return n, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	ids := r.nodes.Available()
	slices.Sort(ids)
	return ids
}
