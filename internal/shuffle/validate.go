package shuffle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMask reports a section mask that is empty or has unknown bits.
var ErrInvalidMask = errors.New("invalid section mask; must be 1..7")

// SectionMask selects the badge acquisition contexts a mode applies to.
type SectionMask uint8

const (
	SectionMap SectionMask = 1 << iota
	SectionRowf
	SectionMerlow

	SectionAll = SectionMap | SectionRowf | SectionMerlow
)

func validateMask(m SectionMask) error {
	if m == 0 || m > SectionAll {
		return fmt.Errorf("%w: got %d", ErrInvalidMask, m)
	}
	return nil
}

// Has reports whether every bit of required is present in m.
func (m SectionMask) Has(required SectionMask) bool {
	return m&required == required
}

func (m SectionMask) String() string {
	var parts []string
	if m.Has(SectionMap) {
		parts = append(parts, "map")
	}
	if m.Has(SectionRowf) {
		parts = append(parts, "rowf")
	}
	if m.Has(SectionMerlow) {
		parts = append(parts, "merlow")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseSection maps "map", "rowf" or "merlow" to its bit.
func ParseSection(s string) (SectionMask, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "map":
		return SectionMap, nil
	case "rowf":
		return SectionRowf, nil
	case "merlow":
		return SectionMerlow, nil
	}
	return 0, fmt.Errorf("%w: unknown section %q (want map, rowf or merlow)", ErrInvalidMask, s)
}
