package xorshift

import "testing"

func TestDeterministic(t *testing.T) {
	a := New(0x1234)
	b := New(0x1234)
	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("step %d: sources diverged: %#x vs %#x", i, va, vb)
		}
	}
}

func TestInt8Range(t *testing.T) {
	s := New(0x9abc)
	for i := 0; i < 10000; i++ {
		v := s.Int8()
		if v < -127 || v > 127 {
			t.Fatalf("value %d out of range at step %d", v, i)
		}
	}
}

func TestInt8DerivedFromState(t *testing.T) {
	// The byte must be a function of the state alone: magnitude from bits
	// 24-30, sign from bit 0.
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		x := a.Next()
		want := int8((x >> 24) & 0x7f)
		if x&1 != 0 {
			want = -want
		}
		if got := b.Int8(); got != want {
			t.Fatalf("step %d: got %d, want %d (state %#x)", i, got, want, x)
		}
	}
}

func TestKnownSequences(t *testing.T) {
	// First values of the canonical benchmark seeds, cross-checked against
	// an independent implementation of the same recurrence.
	tests := []struct {
		seed uint64
		want []int8
	}{
		{0x1234, []int8{60, 81, 63, -43, -119, 69, 105, -58}},
		{0x9abc, []int8{-122, 49, -126, -77, -116, -25, -93, -55}},
	}
	for _, tt := range tests {
		got := make([]int8, len(tt.want))
		Fill(got, tt.seed)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("seed %#x index %d: got %d, want %d", tt.seed, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSeedsProduceDistinctSequences(t *testing.T) {
	a := make([]int8, 256)
	b := make([]int8, 256)
	Fill(a, 0x1234)
	Fill(b, 0x9abc)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestFillMatchesSource(t *testing.T) {
	got := make([]int8, 64)
	Fill(got, 7)
	s := New(7)
	for i := range got {
		if want := s.Int8(); got[i] != want {
			t.Fatalf("index %d: Fill wrote %d, Source yields %d", i, got[i], want)
		}
	}
}

func TestFillPrefixStable(t *testing.T) {
	// Filling a longer buffer must not change the values written to a
	// shorter one; the sequence depends only on the seed.
	short := make([]int8, 16)
	long := make([]int8, 64)
	Fill(short, 0x1234)
	Fill(long, 0x1234)
	for i := range short {
		if short[i] != long[i] {
			t.Fatalf("index %d: %d vs %d", i, short[i], long[i])
		}
	}
}

func TestZeroSeedDegenerate(t *testing.T) {
	dst := []int8{1, 2, 3, 4}
	Fill(dst, 0)
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("index %d: zero seed produced %d", i, v)
		}
	}
}
