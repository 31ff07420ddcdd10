package shader

import (
	"hash/fnv"
	"strconv"

	"github.com/gogpu/nle/value"
)

// Identity is the cache key of a generated program.
//
// Two identities are equal exactly when their programs are byte-identical,
// so hosts can compile each configuration once. Identity is comparable and
// may be used directly as a map key.
type Identity struct {
	NodeID string
	Op     Operation
	KindA  value.Kind
	KindB  value.Kind
}

// String returns the node id followed by the operation and kind codes.
func (id Identity) String() string {
	b := make([]byte, 0, len(id.NodeID)+8)
	b = append(b, id.NodeID...)
	b = strconv.AppendUint(b, uint64(id.Op), 10)
	b = strconv.AppendUint(b, uint64(id.KindA), 10)
	b = strconv.AppendUint(b, uint64(id.KindB), 10)
	return string(b)
}

// Hash returns an FNV-1a hash of the identity fields.
func (id Identity) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id.NodeID)) // fnv.Write never returns an error
	var tail [4]byte
	tail[0] = 0 // separates the id from the codes
	tail[1] = byte(id.Op)
	tail[2] = byte(id.KindA)
	tail[3] = byte(id.KindB)
	_, _ = h.Write(tail[:])
	return h.Sum64()
}

// IdentityHasher adapts Hash for caches keyed by Identity.
func IdentityHasher(id Identity) uint64 { return id.Hash() }

// Label returns a short name for GPU objects built from this program.
func (id Identity) Label() string {
	return "nle-" + strconv.FormatUint(id.Hash(), 36)
}
