// Package randomizer runs the single patch pass over a rom image: code
// patches first, then every room's warps and item slots in room-table order,
// then the shops, then any fixed exits the room mode asks for.
package randomizer

import (
	"context"
	"fmt"

	"github.com/xtding233/romshuffle/internal/catalog"
	"github.com/xtding233/romshuffle/internal/rom"
	"github.com/xtding233/romshuffle/internal/shuffle"
)

// Params are the run's immutable choices.
type Params struct {
	Limbs      [4]uint32 // seed, lowest limb first
	RoomMode   shuffle.RoomMode
	ItemMode   shuffle.ItemMode
	QuickStart bool
}

// Warp records one rewritten exit.
type Warp struct {
	Room     string
	RoomPtr  uint32
	WarpPtr  uint32
	Dest     string
	Entrance uint32
	Fixed    bool // written by a room mode post-pass, not drawn
}

// Item records one overwritten item slot.
type Item struct {
	Section shuffle.SectionMask
	Room    string // empty for shop slots
	Offset  int64
	Old     uint32
	New     uint32
}

// Log is every decision of a run in the order it was written.
type Log struct {
	Rooms int
	Warps []Warp
	Items []Item
}

// Engine ties the generator, the catalog and the image together.
type Engine struct {
	img    *rom.Image
	cat    *catalog.Catalog
	params Params

	// Logf, when set, receives one progress line per room.
	Logf func(format string, args ...any)

	rng    *shuffle.RNG
	rooms  *shuffle.RoomShuffler
	dealer *shuffle.ItemDealer
	log    Log
}

// New prepares a run. Item decks are built and shuffled here, before any
// warp is drawn.
func New(img *rom.Image, cat *catalog.Catalog, p Params) (*Engine, error) {
	e := &Engine{img: img, cat: cat, params: p}
	e.rng = shuffle.NewRNG(p.Limbs)

	dealer, err := shuffle.NewItemDealer(p.ItemMode, cat.Badges(), e.rng)
	if err != nil {
		return nil, err
	}
	e.dealer = dealer

	if p.RoomMode.Shuffles() {
		rs, err := shuffle.NewRoomShuffler(e.rng, cat.DestinationNames(), cat.Entrances)
		if err != nil {
			return nil, err
		}
		e.rooms = rs
	}
	return e, nil
}

func (e *Engine) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// Run patches the image. On error the image is left partially written.
func (e *Engine) Run(ctx context.Context) (*Log, error) {
	if err := e.img.CheckMagic(); err != nil {
		return nil, err
	}
	if err := e.img.ApplyCodePatches(e.params.QuickStart); err != nil {
		return nil, err
	}

	layout := e.img.Layout()
	for i := 0; i < layout.RoomCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := e.img.ReadRoom(i)
		if err != nil {
			return nil, err
		}
		if err := e.patchRoom(entry); err != nil {
			return nil, err
		}
		e.log.Rooms++
	}

	if err := e.patchShop(shuffle.SectionRowf, layout.RowfShop); err != nil {
		return nil, err
	}
	if err := e.patchShop(shuffle.SectionMerlow, layout.MerlowShop); err != nil {
		return nil, err
	}

	if e.params.RoomMode == shuffle.RoomStartWithHammer {
		if err := e.img.ApplyExits(layout.HammerExits); err != nil {
			return nil, fmt.Errorf("hammer start: %w", err)
		}
		for _, x := range layout.HammerExits {
			e.log.Warps = append(e.log.Warps, Warp{
				Room: x.Room, RoomPtr: x.RoomPtr, WarpPtr: x.WarpPtr,
				Dest: x.Name, Entrance: x.Entrance, Fixed: true,
			})
		}
	}

	out := e.log
	return &out, nil
}

func (e *Engine) patchRoom(entry rom.RoomEntry) error {
	room, err := e.cat.Lookup(entry.Name)
	if err != nil {
		return fmt.Errorf("room %d: %w", entry.Index, err)
	}
	e.logf("room %3d %-8s %#08x", entry.Index, entry.Name, entry.RoomPtr)

	if e.rooms != nil {
		for _, wp := range room.WarpPtrs {
			dest, ent := e.rooms.Pick()
			if err := e.img.RewriteExit(entry.RoomPtr, wp, dest, ent); err != nil {
				return fmt.Errorf("room %s: %w", entry.Name, err)
			}
			e.log.Warps = append(e.log.Warps, Warp{
				Room: entry.Name, RoomPtr: entry.RoomPtr, WarpPtr: wp,
				Dest: dest, Entrance: ent,
			})
		}
	}

	if !e.dealer.Targets(shuffle.SectionMap) {
		return nil
	}
	layout := e.img.Layout()
	for _, ip := range room.Items {
		off := layout.RoomFileOffset(entry.RoomPtr, ip)
		if err := e.dealSlot(shuffle.SectionMap, entry.Name, off); err != nil {
			return fmt.Errorf("room %s: %w", entry.Name, err)
		}
	}
	return nil
}

func (e *Engine) patchShop(sec shuffle.SectionMask, r rom.ShopRange) error {
	if !e.dealer.Targets(sec) {
		return nil
	}
	for _, off := range r.Slots() {
		if err := e.dealSlot(sec, "", off); err != nil {
			return fmt.Errorf("%s shop: %w", r.Name, err)
		}
	}
	return nil
}

// dealSlot reads the slot and overwrites it if the dealer says so.
func (e *Engine) dealSlot(sec shuffle.SectionMask, room string, off int64) error {
	cur, err := e.img.ReadU32At(off)
	if err != nil {
		return err
	}
	v, ok := e.dealer.SlotValue(sec, cur)
	if !ok {
		return nil
	}
	if err := e.img.WriteU32At(off, v); err != nil {
		return err
	}
	e.log.Items = append(e.log.Items, Item{Section: sec, Room: room, Offset: off, Old: cur, New: v})
	return nil
}

// Remaining reports how many cards the deck serving sec still holds.
func (e *Engine) Remaining(sec shuffle.SectionMask) int {
	return e.dealer.Remaining(sec)
}
