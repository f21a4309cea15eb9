package shuffle

import (
	"fmt"
	"strings"
)

// ItemKind is the item distribution strategy family.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemTotalRandom
	ItemShuffleGlobal
	ItemShuffleLocal
	ItemDealUsed
	ItemDealAll
)

var itemKindNames = [...]string{
	ItemNone:          "none",
	ItemTotalRandom:   "total-random",
	ItemShuffleGlobal: "shuffle-badges",
	ItemShuffleLocal:  "shuffle-local",
	ItemDealUsed:      "deal-used",
	ItemDealAll:       "deal-all",
}

func (k ItemKind) String() string {
	if k < 0 || int(k) >= len(itemKindNames) {
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
	return itemKindNames[k]
}

// masked reports whether the kind carries a section mask.
func (k ItemKind) masked() bool {
	return k == ItemShuffleLocal || k == ItemDealUsed || k == ItemDealAll
}

// ParseItemKind is the inverse of ItemKind.String.
func ParseItemKind(s string) (ItemKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range itemKindNames {
		if name == s {
			return ItemKind(k), nil
		}
	}
	return ItemNone, fmt.Errorf("unknown item mode %q", s)
}

// ItemMode is one resolved item strategy. Mask is only meaningful for the
// masked families and is SectionAll for ItemShuffleGlobal.
type ItemMode struct {
	Kind ItemKind
	Mask SectionMask
}

func (m ItemMode) String() string {
	if m.Kind.masked() {
		return m.Kind.String() + "(" + m.Mask.String() + ")"
	}
	return m.Kind.String()
}

// RoomMode governs warp rewriting.
type RoomMode int

const (
	RoomNone RoomMode = iota
	RoomStartWithHammer
	RoomTotalRandom
)

func (m RoomMode) String() string {
	switch m {
	case RoomNone:
		return "none"
	case RoomStartWithHammer:
		return "hammer"
	case RoomTotalRandom:
		return "random"
	}
	return fmt.Sprintf("RoomMode(%d)", int(m))
}

// Shuffles reports whether warp pointers get rewritten.
func (m RoomMode) Shuffles() bool {
	return m == RoomStartWithHammer || m == RoomTotalRandom
}

func ParseRoomMode(s string) (RoomMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RoomNone, nil
	case "hammer", "start-with-hammer":
		return RoomStartWithHammer, nil
	case "random", "total-random":
		return RoomTotalRandom, nil
	}
	return RoomNone, fmt.Errorf("unknown room mode %q (want none, hammer or random)", s)
}

// ModeConflictError is returned when two incompatible modes are selected for
// the same run.
type ModeConflictError struct {
	What     string // "item" or "room"
	Existing string
	Incoming string
}

func (e *ModeConflictError) Error() string {
	return fmt.Sprintf("conflicting %s modes: %s and %s", e.What, e.Existing, e.Incoming)
}

// ModeBuilder accumulates mode selections in the order they are given.
// Masked families OR their masks together; anything else may only be
// repeated verbatim.
type ModeBuilder struct {
	item ItemMode
	room RoomMode
}

// SelectItem adds one item mode selection. mask is ignored for unmasked kinds.
func (b *ModeBuilder) SelectItem(kind ItemKind, mask SectionMask) error {
	if kind == ItemNone {
		return nil
	}
	if kind.masked() {
		if err := validateMask(mask); err != nil {
			return err
		}
	} else {
		mask = 0
		if kind == ItemShuffleGlobal {
			mask = SectionAll
		}
	}

	switch b.item.Kind {
	case ItemNone:
		b.item = ItemMode{Kind: kind, Mask: mask}
		return nil
	case kind:
		b.item.Mask |= mask
		return nil
	}
	return &ModeConflictError{What: "item", Existing: b.item.String(), Incoming: ItemMode{Kind: kind, Mask: mask}.String()}
}

// SelectRoom sets the room mode. Selecting a different non-none mode after
// one has been chosen is a conflict.
func (b *ModeBuilder) SelectRoom(m RoomMode) error {
	if m == RoomNone || m == b.room {
		return nil
	}
	if b.room != RoomNone {
		return &ModeConflictError{What: "room", Existing: b.room.String(), Incoming: m.String()}
	}
	b.room = m
	return nil
}

// Item returns the accumulated item mode.
func (b *ModeBuilder) Item() ItemMode { return b.item }

// Room returns the accumulated room mode.
func (b *ModeBuilder) Room() RoomMode { return b.room }
