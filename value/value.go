package value

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Texture is a handle to a texture owned by a rendering backend.
// The zero Texture is invalid.
type Texture struct {
	ID     uint64
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// IsValid reports whether the handle refers to a texture.
func (t Texture) IsValid() bool {
	return t.ID != 0 && t.Width > 0 && t.Height > 0
}

// Value is one entry of a Table.
//
// Only the payload matching Kind is meaningful. Use the constructors to build
// values and the typed accessors to read them.
type Value struct {
	kind    Kind
	text    string
	float   float32
	texture Texture
	samples Samples

	// Tag is an optional label set by the producing node.
	Tag string

	// Source is the id of the node that produced the value, if known.
	Source string
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Float returns a scalar value.
func Float(f float32) Value {
	return Value{kind: KindFloat, float: f}
}

// TextureValue returns a texture value.
func TextureValue(t Texture) Value {
	return Value{kind: KindTexture, texture: t}
}

// SamplesValue returns a sample buffer value. The buffer is not copied.
func SamplesValue(s Samples) Value {
	return Value{kind: KindSamples, samples: s}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool { return v.kind == KindNone }

// Text returns the text payload and whether v is a text value.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Float returns the scalar payload and whether v is a float value.
func (v Value) Float() (float32, bool) {
	return v.float, v.kind == KindFloat
}

// Texture returns the texture payload and whether v is a texture value.
func (v Value) Texture() (Texture, bool) {
	return v.texture, v.kind == KindTexture
}

// Samples returns the sample payload and whether v is a samples value.
func (v Value) Samples() (Samples, bool) {
	return v.samples, v.kind == KindSamples
}

// WithSource returns a copy of v recording the producing node.
func (v Value) WithSource(nodeID string) Value {
	v.Source = nodeID
	return v
}

// WithTag returns a copy of v with the given tag.
func (v Value) WithTag(tag string) Value {
	v.Tag = tag
	return v
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", v.text)
	case KindFloat:
		return fmt.Sprintf("Float(%g)", v.float)
	case KindTexture:
		return fmt.Sprintf("Texture(#%d %dx%d %s)", v.texture.ID, v.texture.Width, v.texture.Height, v.texture.Format)
	case KindSamples:
		return fmt.Sprintf("Samples(%d bytes)", v.samples.Len())
	default:
		return "None"
	}
}
