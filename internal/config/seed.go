package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// ErrBadSeed is returned for a seed that is not a non-negative 128-bit integer.
var ErrBadSeed = errors.New("invalid seed; want a decimal or 0x-prefixed value that fits in 128 bits")

// Seed is a 128-bit seed. The zero seed asks for a fresh one from the clock.
type Seed struct {
	Hi, Lo uint64
}

// ParseSeed accepts decimal, 0x hex, 0o octal or 0b binary. Underscores are
// allowed as digit separators.
func ParseSeed(s string) (Seed, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Seed{}, fmt.Errorf("%w: empty", ErrBadSeed)
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return Seed{}, fmt.Errorf("%w: %q", ErrBadSeed, s)
	}
	lo := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(n, 64)
	return Seed{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// SeedFromTime derives a seed from the wall clock in nanoseconds.
func SeedFromTime(t time.Time) Seed {
	ns := t.UnixNano()
	if ns <= 0 {
		// clock before 1970; any non-zero value will do
		ns = 1
	}
	return Seed{Lo: uint64(ns)}
}

func (s Seed) IsZero() bool { return s.Hi == 0 && s.Lo == 0 }

// Limbs splits the seed into four little-endian 32-bit words, lowest first.
func (s Seed) Limbs() [4]uint32 {
	return [4]uint32{
		uint32(s.Lo),
		uint32(s.Lo >> 32),
		uint32(s.Hi),
		uint32(s.Hi >> 32),
	}
}

// String prints the seed in decimal, the form ParseSeed reads back.
func (s Seed) String() string {
	n := new(big.Int).SetUint64(s.Hi)
	n.Lsh(n, 64)
	n.Or(n, new(big.Int).SetUint64(s.Lo))
	return n.String()
}
