package randomizer_test

import (
	"encoding/binary"
	"fmt"

	"github.com/xtding233/romshuffle/internal/catalog"
	"github.com/xtding233/romshuffle/internal/rom"
	"github.com/xtding233/romshuffle/internal/shuffle"
)

// mem is a fixed-size in-memory image.
type mem []byte

func (m mem) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, m[off:]), nil
}

func (m mem) WriteAt(p []byte, off int64) (int, error) {
	return copy(m[off:], p), nil
}

// Badge pools of the synthetic rom. The ids are placeholders; real pools
// come from the room data file.
var (
	mapBadges = []uint32{
		0x0E0, 0x0E1, 0x0E2, 0x0E3, 0x0E4, 0x0E5, 0x0E6, 0x0E7,
		0x0E8, 0x0E9, 0x0EA, 0x0EB, 0x0EC, 0x0ED, 0x0EE, 0x0EF,
		0x0F0, 0x0F1, 0x0F2, 0x0F3, 0x0F4, 0x0F5, 0x0F6, 0x0F7,
		0x0F8, 0x0F9, 0x0FA, 0x0FB, 0x0FC, 0x0FD, 0x0FE, 0x0FF,
		0x100, 0x101, 0x102, 0x103, 0x104, 0x105, 0x0E8, 0x0F0,
	}
	rowfBadges = []uint32{
		0x106, 0x107, 0x108, 0x109, 0x10A, 0x10B, 0x10C,
		0x10D, 0x10E, 0x10F, 0x110, 0x111, 0x112,
	}
	merlowBadges = []uint32{
		0x113, 0x114, 0x115, 0x116, 0x117, 0x118, 0x119, 0x11A,
		0x11B, 0x11C, 0x11D, 0x11E, 0x11F, 0x120, 0x121,
	}
)

func fixturePools() *shuffle.BadgePools {
	var all []uint32
	for id := uint32(0xE0); id <= 0x12F; id++ {
		all = append(all, id)
	}
	p, err := shuffle.NewBadgePools(mapBadges, rowfBadges, merlowBadges, all)
	if err != nil {
		panic(err)
	}
	return p
}

const (
	fixtureSize  = 0x900000
	nameArea     = 0x70000
	roomArea     = 0x200000
	roomSpacing  = 0x1000
	warpRAM      = 0x80240100
	warpSpacing  = 0x20
	warpNameRAM  = 0x80240800
	warpNameSize = 0x10
	itemRAM      = 0x80240400

	hammerRoomPtr = 0x8ABF90
)

// fixture is a synthetic rom with the default layout and a catalog that
// covers every room in its table.
type fixture struct {
	data   mem
	cat    *catalog.Catalog
	badges *shuffle.BadgePools
	rooms  map[string]catalog.Room
	ptrs   map[string]uint32 // room name -> room file offset
}

func fixtureName(i int) string {
	switch {
	case i == 0:
		return "kmr_00"
	case i == 1:
		return "kmr_04"
	case i-2 < len(catalog.Excluded):
		return catalog.Excluded[i-2]
	}
	return fmt.Sprintf("r_%03d", i)
}

// slotValue is what item k of room i holds before patching.
func slotValue(i, k int) uint32 {
	switch (i + k) % 4 {
	case 0:
		return mapBadges[(i+k)%len(mapBadges)]
	case 1:
		return 0x50
	case 2:
		return 0 // no item
	}
	return 0x300 // out of range sentinel
}

func newFixture() *fixture {
	l := rom.DefaultLayout()
	f := &fixture{
		data:   make(mem, fixtureSize),
		badges: fixturePools(),
		rooms:  map[string]catalog.Room{},
		ptrs:   map[string]uint32{},
	}
	put := func(off int64, v uint32) { binary.BigEndian.PutUint32(f.data[off:], v) }

	copy(f.data[l.MagicOffset:], l.Magic)

	for i := 0; i < l.RoomCount; i++ {
		name := fixtureName(i)
		nameOff := int64(nameArea + i*8)
		copy(f.data[nameOff:], name)

		roomPtr := uint32(roomArea + i*roomSpacing)
		if i == 0 {
			roomPtr = hammerRoomPtr
		}
		rec := l.RoomTable + int64(i)*l.RoomStride
		put(rec, l.RoomNameRAMBase+uint32(nameOff))
		put(rec+8, roomPtr)

		var room catalog.Room
		for e := 0; e <= i%4; e++ {
			room.Entrances = append(room.Entrances, uint32(e))
		}

		if i == 0 {
			room.WarpPtrs = []uint32{l.HammerExits[0].WarpPtr, l.HammerExits[1].WarpPtr}
		} else {
			for k := 0; k < i%3; k++ {
				room.WarpPtrs = append(room.WarpPtrs, uint32(warpRAM+k*warpSpacing))
			}
			for k := 0; k < (i+1)%3; k++ {
				ip := uint32(itemRAM + k*4)
				room.Items = append(room.Items, ip)
				put(l.RoomFileOffset(roomPtr, ip), slotValue(i, k))
			}
		}

		// every warp record points at its own name slot, seeded with the
		// room's own name
		for k, wp := range room.WarpPtrs {
			slot := uint32(warpNameRAM + k*warpNameSize)
			recOff := l.RoomFileOffset(roomPtr, wp)
			put(recOff+int64(l.ExitNameField), slot)
			put(recOff+int64(l.ExitEntranceField), 0xFF)
			copy(f.data[l.RoomFileOffset(roomPtr, slot):], name)
		}

		f.rooms[name] = room
		f.ptrs[name] = roomPtr
	}

	for i, off := range l.RowfShop.Slots() {
		put(off, rowfBadges[i])
		put(off+4, uint32(50+i*10)) // price
	}
	for i, off := range l.MerlowShop.Slots() {
		put(off, merlowBadges[i])
		put(off+4, uint32(1+i))
	}

	f.cat = catalog.New(f.rooms, f.badges)
	return f
}

func (f *fixture) clone() mem {
	return append(mem(nil), f.data...)
}

func (f *fixture) image(m mem) *rom.Image {
	return rom.NewImage(m, int64(len(m)), rom.DefaultLayout())
}

// badgeSlots counts slots that hold a badge before patching.
func (f *fixture) badgeSlots() int {
	l := rom.DefaultLayout()
	n := 0
	for name, r := range f.rooms {
		for _, ip := range r.Items {
			v := binary.BigEndian.Uint32(f.data[l.RoomFileOffset(f.ptrs[name], ip):])
			if f.badges.IsBadge(v) {
				n++
			}
		}
	}
	return n + len(l.RowfShop.Slots()) + len(l.MerlowShop.Slots())
}
