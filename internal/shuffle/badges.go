package shuffle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoBadges is returned when a badge mode runs without badge pools.
var ErrNoBadges = errors.New("no badge pools loaded; add a badges block to the room data")

// BadgePools are the badge ids of one rom. They ship with the room data
// rather than in code because they differ between dumps.
type BadgePools struct {
	Map    []uint32 // overworld placements, duplicates kept
	Rowf   []uint32 // one per shop slot
	Merlow []uint32

	all []uint32
	set mapset.Set[uint32]
}

// NewBadgePools builds the pools. all lists every badge id once, placed or
// not; when empty it defaults to the distinct placed ids. A placed id that
// all does not list is an error.
func NewBadgePools(mapIDs, rowf, merlow, all []uint32) (*BadgePools, error) {
	p := &BadgePools{
		Map:    slices.Clone(mapIDs),
		Rowf:   slices.Clone(rowf),
		Merlow: slices.Clone(merlow),
		set:    mapset.New[uint32](),
	}
	if len(all) == 0 {
		all = p.Used()
		slices.Sort(all)
		all = slices.Compact(all)
	}
	p.all = slices.Clone(all)
	for _, id := range p.all {
		p.set.Put(id)
	}
	for _, id := range p.Used() {
		if !p.set.Has(id) {
			return nil, fmt.Errorf("badge %#x is placed but missing from the full badge list", id)
		}
	}
	return p, nil
}

// Empty reports whether there is nothing to deal. A nil pool is empty.
func (p *BadgePools) Empty() bool {
	return p == nil || len(p.all) == 0
}

// Used returns every badge placement in the game, duplicates kept, in map,
// rowf, merlow order.
func (p *BadgePools) Used() []uint32 {
	out := make([]uint32, 0, len(p.Map)+len(p.Rowf)+len(p.Merlow))
	out = append(out, p.Map...)
	out = append(out, p.Rowf...)
	out = append(out, p.Merlow...)
	return out
}

// All returns each badge id once, including badges the vanilla game never
// places.
func (p *BadgePools) All() []uint32 {
	return slices.Clone(p.all)
}

// IsBadge reports whether id is a known badge.
func (p *BadgePools) IsBadge(id uint32) bool {
	if p == nil {
		return false
	}
	return p.set.Has(id)
}
