package shuffle

import "fmt"

// Per-slot random items are drawn from [1, 0x16C). A slot is only overwritten
// while it holds a value in (0, 0x200); zero and larger values are sentinels.
const (
	RandomItemMin      uint32 = 1
	RandomItemOnePast  uint32 = 0x16C
	RandomItemGuardMax uint32 = 0x200
)

// DealerState is the state of an ItemDealer, fixed at construction.
type DealerState int

const (
	DealerInactive DealerState = iota
	DealerPerSlotRandom
	DealerDeckBacked
)

func (s DealerState) String() string {
	switch s {
	case DealerInactive:
		return "inactive"
	case DealerPerSlotRandom:
		return "per-slot-random"
	case DealerDeckBacked:
		return "deck-backed"
	}
	return fmt.Sprintf("DealerState(%d)", int(s))
}

// ItemDealer decides replacement values for item slots.
// - Inactive: never replaces anything.
// - PerSlotRandom: every map slot draws a fresh id; the draw is consumed even
// when the guard keeps the old value.
// - DeckBacked: slots currently holding a badge get the next card of their
// section's deck, as long as the section is targeted and the deck has cards.
// Shared-deck modes point every targeted section at the same Deck.
type ItemDealer struct {
	Mode   ItemMode
	State  DealerState
	RNG    RandomSource
	Badges *BadgePools

	decks [3]*Deck // map, rowf, merlow
}

// NewItemDealer builds and shuffles the decks for mode. Decks are built in
// map, rowf, merlow order so the draw sequence is stable for a seed.
// badges may be nil unless the mode deals badges.
func NewItemDealer(mode ItemMode, badges *BadgePools, rng RandomSource) (*ItemDealer, error) {
	d := &ItemDealer{Mode: mode, RNG: rng, Badges: badges}

	switch mode.Kind {
	case ItemNone:
		d.State = DealerInactive
		return d, nil
	case ItemTotalRandom:
		d.State = DealerPerSlotRandom
		return d, nil
	}

	if mode.Kind.masked() {
		if err := validateMask(mode.Mask); err != nil {
			return nil, err
		}
	}
	if badges.Empty() {
		return nil, fmt.Errorf("%w (item mode %s)", ErrNoBadges, mode)
	}

	switch mode.Kind {
	case ItemShuffleGlobal:
		d.Mode.Mask = SectionAll
		d.share(NewDeck(badges.Used(), rng))
	case ItemShuffleLocal:
		pools := [3][]uint32{badges.Map, badges.Rowf, badges.Merlow}
		for i, sec := range sections {
			if mode.Mask.Has(sec) {
				d.decks[i] = NewDeck(pools[i], rng)
			}
		}
	case ItemDealUsed:
		d.share(NewDeck(badges.Used(), rng))
	case ItemDealAll:
		d.share(NewDeck(badges.All(), rng))
	default:
		return nil, fmt.Errorf("unsupported item mode %v", mode.Kind)
	}

	d.State = DealerDeckBacked
	return d, nil
}

var sections = [3]SectionMask{SectionMap, SectionRowf, SectionMerlow}

func sectionIndex(sec SectionMask) int {
	for i, s := range sections {
		if s == sec {
			return i
		}
	}
	return -1
}

// share hands one deck to every section in the mode's mask.
func (d *ItemDealer) share(deck *Deck) {
	for i, sec := range sections {
		if d.Mode.Mask.Has(sec) {
			d.decks[i] = deck
		}
	}
}

// Targets reports whether slots in sec are ever touched.
func (d *ItemDealer) Targets(sec SectionMask) bool {
	switch d.State {
	case DealerPerSlotRandom:
		return sec == SectionMap
	case DealerDeckBacked:
		i := sectionIndex(sec)
		return i >= 0 && d.decks[i] != nil
	}
	return false
}

// SlotValue returns the value to write into a slot of section sec currently
// holding current. ok is false when the slot must be left untouched.
func (d *ItemDealer) SlotValue(sec SectionMask, current uint32) (uint32, bool) {
	if !d.Targets(sec) {
		return 0, false
	}

	switch d.State {
	case DealerPerSlotRandom:
		v := Uniform(d.RNG, RandomItemMin, RandomItemOnePast)
		if current == 0 || current >= RandomItemGuardMax {
			return 0, false
		}
		return v, true

	case DealerDeckBacked:
		if !d.Badges.IsBadge(current) {
			return 0, false
		}
		return d.decks[sectionIndex(sec)].TryPop()
	}

	return 0, false
}

// Remaining is the number of cards left in the deck serving sec.
func (d *ItemDealer) Remaining(sec SectionMask) int {
	i := sectionIndex(sec)
	if i < 0 {
		return 0
	}
	return d.decks[i].Len()
}
