// Package value holds the per-pass data that flows between nodes.
//
// A node's inputs are evaluated into [Table]s, one per input, collected in a
// [Database]. Each table is an ordered list of [Value]s tagged with a [Kind].
// Tables are created for one evaluation pass and discarded afterwards.
package value

// Kind tags the payload of a [Value].
//
// The numeric code of a kind is part of generated shader identities, so
// existing constants must keep their values. Add new kinds at the end.
type Kind uint8

const (
	// KindNone is the zero kind. Tables never hold it.
	KindNone Kind = iota

	// KindText is a string payload.
	KindText

	// KindFloat is a scalar payload. It is the fallback kind of InferKind.
	KindFloat

	// KindTexture is a GPU texture handle.
	KindTexture

	// KindSamples is a buffer of packed float32 audio samples.
	KindSamples
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindText:
		return "Text"
	case KindFloat:
		return "Float"
	case KindTexture:
		return "Texture"
	case KindSamples:
		return "Samples"
	default:
		return "Unknown"
	}
}

// inferPriority lists the kinds InferKind looks for, highest priority first.
// Insert new kinds at the position they should win at.
var inferPriority = []Kind{
	KindTexture,
}

// FallbackKind is returned by InferKind when no prioritized kind is present.
const FallbackKind = KindFloat

// InferKind returns the kind an input should be treated as when choosing an
// execution path. A table holding a texture is a texture; anything else,
// including an empty table, is treated as a float.
func InferKind(t Table) Kind {
	for _, k := range inferPriority {
		if t.Has(k) {
			return k
		}
	}
	return FallbackKind
}
