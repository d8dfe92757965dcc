// Package xorshift provides the deterministic pseudo-random source used to
// fill benchmark weights and inputs with reproducible int8 values.
package xorshift

// Source is a 64-bit xorshift generator. A zero seed is degenerate: the
// state never leaves zero and every derived value is zero, so callers pass
// an explicit nonzero seed for meaningful data.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Next advances the generator by one step and returns the new state.
func (s *Source) Next() uint64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.state = x
	return x
}

// Int8 derives one signed byte from the next state: a 7-bit magnitude taken
// from bits 24-30, negated when bit 0 of the state is set. Results lie in
// [-127, 127].
func (s *Source) Int8() int8 {
	x := s.Next()
	v := int8((x >> 24) & 0x7f)
	if x&1 != 0 {
		v = -v
	}
	return v
}

// Fill writes len(dst) values drawn from a fresh Source seeded with seed.
// The same seed always yields the same sequence, independent of dst length.
func Fill(dst []int8, seed uint64) {
	s := New(seed)
	for i := range dst {
		dst[i] = s.Int8()
	}
}
