package engine

import (
	"math"
	"testing"
)

func testVectorizer(t *testing.T) *Vectorizer {
	t.Helper()
	model, err := BuildModel(mentorsWithFeatures("python data science fintech", "java backend fintech"))
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}
	return model.Vectorizer()
}

func TestVectorizer_UnitNorm(t *testing.T) {
	vz := testVectorizer(t)

	vec := vz.Vector("python fintech python")
	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if math.Abs(norm-1) > 1e-9 {
		t.Errorf("norm^2 = %v, want 1", norm)
	}
}

func TestVectorizer_UnknownTermsDropped(t *testing.T) {
	vz := testVectorizer(t)

	// Vocabulary is frozen: unknown terms contribute nothing and never grow it.
	vec := vz.Vector("quantum blockchain python")
	if len(vec) != 1 {
		t.Fatalf("len(vec) = %d, want 1 (only python is in the vocabulary)", len(vec))
	}
}

func TestVectorizer_ZeroVector(t *testing.T) {
	vz := testVectorizer(t)

	// All terms unknown: a valid degenerate vector, not an error.
	vec := vz.Vector("quantum blockchain")
	if len(vec) != 0 {
		t.Fatalf("len(vec) = %d, want 0", len(vec))
	}
	other := vz.Vector("python fintech")
	if got := vec.Dot(other); got != 0 {
		t.Errorf("zero vector dot = %v, want 0", got)
	}
}

func TestVector_DotBitStable(t *testing.T) {
	vz := testVectorizer(t)

	// Floating-point addition is not associative, so the summation order
	// must be fixed: the same pair of texts has to produce a bit-identical
	// score on every call, or equal-scored candidates flip order between runs.
	b := vz.Vector("python data science fintech")
	want := vz.Vector("python data science fintech").Dot(b)
	for i := 0; i < 2000; i++ {
		if got := vz.Vector("python data science fintech").Dot(b); got != want {
			t.Fatalf("call %d: dot = %v, want bit-identical %v", i, got, want)
		}
	}
}

func TestVector_Dot(t *testing.T) {
	vz := testVectorizer(t)

	a := vz.Vector("python data science fintech")
	if got := a.Dot(a); math.Abs(got-1) > 1e-9 {
		t.Errorf("self dot = %v, want 1", got)
	}

	b := vz.Vector("java backend fintech")
	ab, ba := a.Dot(b), b.Dot(a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("dot not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 || ab >= 1 {
		t.Errorf("dot = %v, want in (0,1) for partially overlapping docs", ab)
	}
}
