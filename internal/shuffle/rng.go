package shuffle

// RandomSource is a stream of 32-bit draws. Every decision in a run reads
// from one source, in a fixed order.

type RandomSource interface {
	NextU32() uint32
}

// RNG is a 128-bit xorshift generator. The output sequence for a given seed is
// part of the seed format: any change here breaks every published seed.
type RNG struct {
	s [4]uint32
}

// NewRNG seeds the generator from four little-endian limbs of a 128-bit seed,
// limbs[0] holding the lowest 32 bits. An all-zero state never advances, so
// callers resolve a zero seed before getting here.
func NewRNG(limbs [4]uint32) *RNG {
	return &RNG{s: limbs}
}

// NextU32 advances the state and returns the new first word.
func (x *RNG) NextU32() uint32 {
	t := x.s[3]

	x.s[3] = x.s[2]
	x.s[2] = x.s[1]
	x.s[1] = x.s[0]

	t ^= t << 11
	t ^= t >> 8
	x.s[0] = t ^ x.s[0] ^ (x.s[0] >> 19)

	return x.s[0]
}

// State returns a copy of the current state words.
func (x *RNG) State() [4]uint32 { return x.s }
