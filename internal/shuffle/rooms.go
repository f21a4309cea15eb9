package shuffle

import (
	"errors"
	"fmt"
)

// ErrNoDestinations is returned when every room is excluded.
var ErrNoDestinations = errors.New("no destination rooms to draw from")

// EntranceLookup returns the entrance ids of a destination room.
type EntranceLookup func(name string) []uint32

// RoomShuffler picks a destination for each warp. Every warp is drawn
// independently: nothing stops self loops or two warps sharing a
// destination.
type RoomShuffler struct {
	RNG       RandomSource
	Names     []string
	Entrances EntranceLookup
}

// NewRoomShuffler checks that every name has at least one entrance so Pick
// can never index an empty slice.
func NewRoomShuffler(rng RandomSource, names []string, entrances EntranceLookup) (*RoomShuffler, error) {
	if len(names) == 0 {
		return nil, ErrNoDestinations
	}
	for _, n := range names {
		if len(entrances(n)) == 0 {
			return nil, fmt.Errorf("destination room %q has no entrances", n)
		}
	}
	return &RoomShuffler{RNG: rng, Names: names, Entrances: entrances}, nil
}

// Pick draws a room and then one of its entrances.
func (r *RoomShuffler) Pick() (name string, entrance uint32) {
	name = Choice(r.RNG, r.Names)
	entrance = Choice(r.RNG, r.Entrances(name))
	return name, entrance
}
