// Package mix combines audio sample buffers on the CPU.
package mix

import (
	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
)

// Samples combines two sample buffers with op and returns a new buffer.
//
// The result starts as a copy of the longer buffer; a is used when both have
// the same length. Every whole sample the two buffers share is then replaced
// by op.Apply(a[i], b[i]). Samples past the shorter buffer keep the values of
// the longer one. Neither input is modified.
func Samples(a, b value.Samples, op shader.Operation) value.Samples {
	base := a
	if b.Len() > a.Len() {
		base = b
	}
	out := base.Clone()
	if out == nil {
		return value.Samples{}
	}

	n := min(a.Count(), b.Count())
	for i := 0; i < n; i++ {
		out.Set(i, op.Apply(a.At(i), b.At(i)))
	}
	return out
}
