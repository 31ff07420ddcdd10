package mix

import (
	"testing"

	"github.com/gogpu/nle/shader"
	"github.com/gogpu/nle/value"
	"github.com/google/go-cmp/cmp"
)

func TestSamplesLongerFirst(t *testing.T) {
	a := value.SamplesFromFloats([]float32{1, 2})
	b := value.SamplesFromFloats([]float32{3})

	got := Samples(a, b, shader.OpAdd)

	if got.Len() != a.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), a.Len())
	}
	if diff := cmp.Diff([]float32{4, 2}, got.Floats()); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestSamplesLongerSecond(t *testing.T) {
	a := value.SamplesFromFloats([]float32{1})
	b := value.SamplesFromFloats([]float32{10, 20, 30})

	got := Samples(a, b, shader.OpAdd)
	if diff := cmp.Diff([]float32{11, 20, 30}, got.Floats()); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestSamplesEqualLengthPrefersFirst(t *testing.T) {
	// Same byte length, but a carries a trailing partial sample that only
	// survives when a is the base copy.
	a := append(value.SamplesFromFloats([]float32{1}), 0xAA, 0xBB)
	b := append(value.SamplesFromFloats([]float32{2}), 0x11, 0x22)

	got := Samples(a, b, shader.OpAdd)
	if got.At(0) != 3 {
		t.Errorf("At(0) = %v, want 3", got.At(0))
	}
	if got[4] != 0xAA || got[5] != 0xBB {
		t.Errorf("tail = % x, want aa bb from the first buffer", got[4:])
	}
}

func TestSamplesDoesNotModifyInputs(t *testing.T) {
	a := value.SamplesFromFloats([]float32{1, 2, 3})
	b := value.SamplesFromFloats([]float32{1, 1, 1, 1})
	aCopy, bCopy := a.Clone(), b.Clone()

	_ = Samples(a, b, shader.OpMultiply)

	if diff := cmp.Diff(aCopy, a); diff != "" {
		t.Errorf("a modified:\n%s", diff)
	}
	if diff := cmp.Diff(bCopy, b); diff != "" {
		t.Errorf("b modified:\n%s", diff)
	}
}

func TestSamplesProperty(t *testing.T) {
	lengths := []int{0, 1, 2, 5, 8}
	for _, la := range lengths {
		for _, lb := range lengths {
			fa := make([]float32, la)
			fb := make([]float32, lb)
			for i := range fa {
				fa[i] = float32(i) + 0.5
			}
			for i := range fb {
				fb[i] = float32(i) * 2
			}
			a, b := value.SamplesFromFloats(fa), value.SamplesFromFloats(fb)

			got := Samples(a, b, shader.OpSubtract)

			if got.Len() != max(a.Len(), b.Len()) {
				t.Fatalf("la=%d lb=%d: Len() = %d", la, lb, got.Len())
			}
			for i := 0; i < min(la, lb); i++ {
				if want := fa[i] - fb[i]; got.At(i) != want {
					t.Errorf("la=%d lb=%d: At(%d) = %v, want %v", la, lb, i, got.At(i), want)
				}
			}
		}
	}
}

func TestSamplesEmpty(t *testing.T) {
	got := Samples(nil, nil, shader.OpAdd)
	if got == nil || got.Len() != 0 {
		t.Errorf("Samples(nil, nil) = %v, want empty non-nil buffer", got)
	}
}
