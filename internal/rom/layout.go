package rom

// Word is one big-endian instruction or data word at an absolute file offset.
type Word struct {
	Offset int64
	Value  uint32
}

// ShopRange is a run of fixed-size shop records. Each record starts with the
// item id word.
type ShopRange struct {
	Name   string
	Start  int64
	End    int64 // exclusive
	Stride int64
}

// Slots returns the offset of every record in the range.
func (r ShopRange) Slots() []int64 {
	var out []int64
	for off := r.Start; off+r.Stride <= r.End; off += r.Stride {
		out = append(out, off)
	}
	return out
}

// ExitPatch is a fixed warp rewrite applied after the room pass.
type ExitPatch struct {
	Room     string // for reporting only
	RoomPtr  uint32
	WarpPtr  uint32
	Name     string
	Entrance uint32
}

// Layout is every offset of the supported ROM in one place. Only the USA
// big-endian dump is known, see DefaultLayout.
type Layout struct {
	MagicOffset int64
	Magic       string

	// applied to every output
	CodePatches []Word
	// applied with quick start only
	QuickStart []Word

	RoomTable       int64
	RoomCount       int
	RoomStride      int64
	RoomNameRAMBase uint32 // subtracted from a name pointer to get a file offset
	RoomNameSize    int

	// RoomBase is the RAM address a room's file offset corresponds to.
	RoomBase uint32

	// warp record fields relative to the warp pointer
	ExitNameField     uint32
	ExitEntranceField uint32

	HammerExits []ExitPatch

	RowfShop   ShopRange
	MerlowShop ShopRange
}

const shopStride = 12

// DefaultLayout is the layout of "Paper Mario (USA).z64".
func DefaultLayout() Layout {
	return Layout{
		MagicOffset: 0x20,
		Magic:       "PAPER MARIO",

		CodePatches: []Word{
			// start with goombario out
			{0x808A8, 0xA0820012},
			// action commands on
			{0x808AC, 0xA082000A},
			{0x808B0, 0x2402FFFF},
			{0x808E4, 0xA0800000},
			// every party member
			{0x808E8, 0xA0A20014},
			// menus
			{0x168074, 0x2406FF81},
		},
		QuickStart: []Word{
			// skip the opening at mario's house
			{0x168080, 0x24020000},
		},

		RoomTable:       0x6B450,
		RoomCount:       421,
		RoomStride:      0x20,
		RoomNameRAMBase: 0x80024C00,
		RoomNameSize:    8,

		RoomBase: 0x80240000,

		ExitNameField:     0xC,
		ExitEntranceField: 0x10,

		// kmr_00, where mario lands, leads straight to the hammer
		HammerExits: []ExitPatch{
			{Room: "kmr_00", RoomPtr: 0x8ABF90, WarpPtr: 0x80240E4C, Name: "kmr_04", Entrance: 2},
			{Room: "kmr_00", RoomPtr: 0x8ABF90, WarpPtr: 0x80242C80, Name: "kmr_04", Entrance: 2},
		},

		RowfShop:   ShopRange{Name: "rowf", Start: 0x7E0A3C, End: 0x7E0AD8, Stride: shopStride},
		MerlowShop: ShopRange{Name: "merlow", Start: 0x7E5D80, End: 0x7E5E34, Stride: shopStride},
	}
}

// RoomFileOffset converts a room-relative RAM pointer into a file offset.
// The arithmetic wraps like the target's 32-bit pointers do.
func (l Layout) RoomFileOffset(roomPtr, ramPtr uint32) int64 {
	return int64(roomPtr + ramPtr - l.RoomBase)
}
