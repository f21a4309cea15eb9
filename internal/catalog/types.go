// Package catalog holds the static room metadata the randomizer works from:
// for every room, its entrance ids and the RAM addresses of its item slots
// and warp records, plus the rom's badge pools.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/xtding233/romshuffle/internal/shuffle"
)

// ErrUnknownRoom is returned for a room the rom names but the room data
// does not describe.
var ErrUnknownRoom = errors.New("room not in catalog")

// Room mirrors one entry of the room data file.
type Room struct {
	Entrances []uint32 `yaml:"entrances" json:"entrances"`
	Items     []uint32 `yaml:"items" json:"items"`
	WarpPtrs  []uint32 `yaml:"warp_ptrs" json:"warp_ptrs"`
}

// Catalog maps room names to their metadata. It is never modified after
// loading.
type Catalog struct {
	rooms  map[string]Room
	badges *shuffle.BadgePools
}

// New builds a catalog from an in-memory table. badges may be nil for room
// data without a badge block.
func New(rooms map[string]Room, badges *shuffle.BadgePools) *Catalog {
	return &Catalog{rooms: rooms, badges: badges}
}

// Badges returns the badge pools, nil when the room data has none.
func (c *Catalog) Badges() *shuffle.BadgePools { return c.badges }

// Lookup returns the metadata for name.
func (c *Catalog) Lookup(name string) (Room, error) {
	r, ok := c.rooms[name]
	if !ok {
		return Room{}, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
	}
	return r, nil
}

// Entrances returns name's entrance ids, nil for unknown rooms.
func (c *Catalog) Entrances(name string) []uint32 {
	return c.rooms[name].Entrances
}

// Names returns every room name in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.rooms))
	for n := range c.rooms {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (c *Catalog) Len() int { return len(c.rooms) }
