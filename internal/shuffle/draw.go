package shuffle

import "errors"

// ErrEmptyRange is the panic value of Uniform for an empty range.
var ErrEmptyRange = errors.New("empty range; onePastMax must be greater than min")

// Uniform returns NextU32() % (onePastMax-min) + min, a value in [min, onePastMax).
// The modulo bias is kept: seeds depend on it.
// An empty range is a programming error and panics with ErrEmptyRange.
func Uniform(rng RandomSource, min, onePastMax uint32) uint32 {
	if onePastMax <= min {
		panic(ErrEmptyRange)
	}
	return rng.NextU32()%(onePastMax-min) + min
}

// Choice picks one element of s with a single Uniform draw.
func Choice[T any](rng RandomSource, s []T) T {
	return s[Uniform(rng, 0, uint32(len(s)))]
}

// Shuffle permutes s in place.
//
// The loop stops two short of the end, so the last swap of a textbook
// Fisher-Yates never happens and slices shorter than three are left alone
// without consuming any draws. Existing seeds rely on exactly this sequence.
func Shuffle[T any](rng RandomSource, s []T) {
	n := uint32(len(s))
	for i := uint32(0); i+2 < n; i++ {
		j := Uniform(rng, i, n)
		s[i], s[j] = s[j], s[i]
	}
}
