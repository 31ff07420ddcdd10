package value

import (
	"encoding/binary"
	"math"
)

// SampleSize is the size in bytes of one sample.
const SampleSize = 4

// Samples is a buffer of little-endian float32 samples.
//
// The buffer is addressed in bytes, so its length need not be a multiple of
// SampleSize. Trailing bytes that do not form a whole sample are ignored by
// the sample accessors.
type Samples []byte

// SamplesFromFloats packs f into a new buffer.
func SamplesFromFloats(f []float32) Samples {
	s := make(Samples, len(f)*SampleSize)
	for i, v := range f {
		s.Set(i, v)
	}
	return s
}

// Len returns the buffer length in bytes.
func (s Samples) Len() int { return len(s) }

// Count returns the number of whole samples in the buffer.
func (s Samples) Count() int { return len(s) / SampleSize }

// At returns sample i. It panics if i is out of range.
func (s Samples) At(i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(s[i*SampleSize:]))
}

// Set stores f at sample i. It panics if i is out of range.
func (s Samples) Set(i int, f float32) {
	binary.LittleEndian.PutUint32(s[i*SampleSize:], math.Float32bits(f))
}

// Floats unpacks the whole samples into a new slice.
func (s Samples) Floats() []float32 {
	f := make([]float32, s.Count())
	for i := range f {
		f[i] = s.At(i)
	}
	return f
}

// Clone returns a copy of the buffer.
func (s Samples) Clone() Samples {
	if s == nil {
		return nil
	}
	c := make(Samples, len(s))
	copy(c, s)
	return c
}
