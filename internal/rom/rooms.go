package rom

import "fmt"

// RoomEntry is one record of the rom's room table.
type RoomEntry struct {
	Index   int
	Name    string
	RoomPtr uint32 // file offset of the room
}

// ReadRoom decodes record i of the room table. Word 0 is the RAM address of
// the room's name, word 2 the room's file offset.
func (img *Image) ReadRoom(i int) (RoomEntry, error) {
	l := img.layout
	rec := l.RoomTable + int64(i)*l.RoomStride

	nameRAM, err := img.ReadU32At(rec)
	if err != nil {
		return RoomEntry{}, fmt.Errorf("room %d: %w", i, err)
	}
	roomPtr, err := img.ReadU32At(rec + 8)
	if err != nil {
		return RoomEntry{}, fmt.Errorf("room %d: %w", i, err)
	}
	name, err := img.ReadCString(int64(nameRAM-l.RoomNameRAMBase), l.RoomNameSize)
	if err != nil {
		return RoomEntry{}, fmt.Errorf("room %d name: %w", i, err)
	}
	return RoomEntry{Index: i, Name: name, RoomPtr: roomPtr}, nil
}

// Rooms reads the whole room table.
func (img *Image) Rooms() ([]RoomEntry, error) {
	out := make([]RoomEntry, 0, img.layout.RoomCount)
	for i := 0; i < img.layout.RoomCount; i++ {
		r, err := img.ReadRoom(i)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
