package value

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func testTexture() Texture {
	return Texture{ID: 7, Width: 64, Height: 32, Format: gputypes.TextureFormatRGBA8Unorm}
}

func TestInferKind(t *testing.T) {
	tex := TextureValue(testTexture())

	tests := []struct {
		name  string
		table Table
		want  Kind
	}{
		{"empty", Table{}, KindFloat},
		{"float only", NewTable(Float(1)), KindFloat},
		{"text only", NewTable(Text("add")), KindFloat},
		{"samples only", NewTable(SamplesValue(SamplesFromFloats([]float32{1}))), KindFloat},
		{"texture only", NewTable(tex), KindTexture},
		{"texture before float", NewTable(tex, Float(2)), KindTexture},
		{"texture after samples", NewTable(SamplesValue(Samples{0, 0, 0, 0}), tex), KindTexture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferKind(tt.table); got != tt.want {
				t.Errorf("InferKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableGetShadowsEarlierEntries(t *testing.T) {
	tbl := NewTable(Float(1), Text("x"), Float(2))

	v, ok := tbl.Get(KindFloat)
	if !ok {
		t.Fatal("Get(KindFloat) reported missing")
	}
	if f, _ := v.Float(); f != 2 {
		t.Errorf("Get(KindFloat) = %v, want 2", f)
	}
	if _, ok := tbl.Get(KindTexture); ok {
		t.Error("Get(KindTexture) reported present")
	}
	if !tbl.Has(KindText) || tbl.Has(KindSamples) {
		t.Error("Has() mismatch")
	}
}

func TestTablePushDropsZero(t *testing.T) {
	var tbl Table
	tbl.Push(Value{})
	if !tbl.IsEmpty() {
		t.Errorf("Len() = %d after pushing zero value, want 0", tbl.Len())
	}
}

func TestMergeOrderAndIsolation(t *testing.T) {
	a := NewTable(Float(1))
	b := NewTable(Float(2), Text("b"))

	m := Merge(a, b)
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	v, _ := m.Get(KindFloat)
	if f, _ := v.Float(); f != 2 {
		t.Errorf("merged Get(KindFloat) = %v, want 2", f)
	}

	m.Push(Float(3))
	if a.Len() != 1 || b.Len() != 2 {
		t.Error("Push on merged table modified a source table")
	}
}

func TestDatabase(t *testing.T) {
	db := NewDatabase()
	db.Insert("b", NewTable(Float(2)))
	db.Insert("a", NewTable(Float(1)))
	db.Insert("b", NewTable(Text("again")))

	if diff := cmp.Diff([]string{"b", "a"}, db.IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
	if got := db.Table("missing"); !got.IsEmpty() {
		t.Errorf("Table(missing) has %d entries", got.Len())
	}

	merged := db.Merge()
	got := make([]string, 0, merged.Len())
	for _, v := range merged.Values() {
		got = append(got, v.String())
	}
	want := []string{`Text("again")`, "Float(1)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestNilDatabase(t *testing.T) {
	var db *Database
	if db.Has("x") || !db.Table("x").IsEmpty() || !db.Merge().IsEmpty() || db.IDs() != nil {
		t.Error("nil database should behave as empty")
	}
}

func TestSamplesRoundTrip(t *testing.T) {
	in := []float32{1, -2.5, 0.125}
	s := SamplesFromFloats(in)
	if s.Len() != 12 || s.Count() != 3 {
		t.Fatalf("Len()=%d Count()=%d, want 12 and 3", s.Len(), s.Count())
	}
	if diff := cmp.Diff(in, s.Floats()); diff != "" {
		t.Errorf("Floats() mismatch (-want +got):\n%s", diff)
	}

	odd := append(s.Clone(), 0xff, 0xff)
	if odd.Count() != 3 {
		t.Errorf("Count() with trailing bytes = %d, want 3", odd.Count())
	}
}

func TestValueAccessors(t *testing.T) {
	v := Float(3).WithSource("node").WithTag("gain")
	if f, ok := v.Float(); !ok || f != 3 {
		t.Errorf("Float() = %v, %v", f, ok)
	}
	if _, ok := v.Text(); ok {
		t.Error("Text() ok on a float value")
	}
	if v.Source != "node" || v.Tag != "gain" {
		t.Errorf("Source=%q Tag=%q", v.Source, v.Tag)
	}

	tex, ok := TextureValue(testTexture()).Texture()
	if !ok || !tex.IsValid() {
		t.Errorf("Texture() = %+v, %v", tex, ok)
	}
	if (Texture{}).IsValid() {
		t.Error("zero Texture reported valid")
	}
}
