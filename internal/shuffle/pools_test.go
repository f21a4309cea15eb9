package shuffle_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/xtding233/romshuffle/internal/shuffle"
)

// Made-up ids in the shape of a real table: the map pool repeats two ids and
// the full list holds ids that nothing places.
var (
	testMap = []uint32{
		0xE0, 0xE1, 0xE2, 0xE3, 0xE4, 0xE5, 0xE6, 0xE7,
		0xE8, 0xE9, 0xEA, 0xEB, 0xEC, 0xED, 0xE8, 0xE3,
	}
	testRowf   = []uint32{0x106, 0x107, 0x108, 0x109, 0x10A, 0x10B}
	testMerlow = []uint32{0x113, 0x114, 0x115, 0x116, 0x117}
)

func testAll() []uint32 {
	var out []uint32
	for id := uint32(0xE0); id < 0x130; id++ {
		out = append(out, id)
	}
	return out
}

func testPools(t *testing.T) *shuffle.BadgePools {
	t.Helper()
	p, err := shuffle.NewBadgePools(testMap, testRowf, testMerlow, testAll())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBadgePools(t *testing.T) {
	p := testPools(t)
	used := p.Used()
	if len(used) != len(testMap)+len(testRowf)+len(testMerlow) {
		t.Fatalf("used pool has %d ids", len(used))
	}
	if len(p.All()) != 0x50 {
		t.Fatalf("all pool has %d ids", len(p.All()))
	}
	for _, id := range used {
		if !p.IsBadge(id) {
			t.Fatalf("%#x is placed but is not a badge", id)
		}
	}
	if !p.IsBadge(0x12F) {
		t.Fatalf("unplaced ids from the full list are still badges")
	}
	if p.IsBadge(0x10) || p.IsBadge(0x200) {
		t.Fatalf("non-badge ids reported as badges")
	}
}

func TestBadgePoolsDefaultAll(t *testing.T) {
	p, err := shuffle.NewBadgePools(testMap, testRowf, testMerlow, nil)
	if err != nil {
		t.Fatal(err)
	}
	all := p.All()
	if !slices.IsSorted(all) || len(all) != len(testMap)-2+len(testRowf)+len(testMerlow) {
		t.Fatalf("default full list should be the distinct placed ids, got %#x", all)
	}
	if p.IsBadge(0x12F) {
		t.Fatalf("unlisted id reported as a badge")
	}
}

func TestBadgePoolsRejectUnlistedPlacement(t *testing.T) {
	if _, err := shuffle.NewBadgePools([]uint32{0xE0, 0x300}, nil, nil, []uint32{0xE0}); err == nil {
		t.Fatalf("a placed id missing from the full list must be rejected")
	}
}

func TestBadgePoolsNil(t *testing.T) {
	var p *shuffle.BadgePools
	if !p.Empty() || p.IsBadge(0xE0) {
		t.Fatalf("nil pools must be empty")
	}
}

func TestDeckModesNeedBadges(t *testing.T) {
	rng := shuffle.NewRNG([4]uint32{1})
	for _, mode := range []shuffle.ItemMode{
		{Kind: shuffle.ItemShuffleGlobal},
		{Kind: shuffle.ItemShuffleLocal, Mask: shuffle.SectionMap},
		{Kind: shuffle.ItemDealUsed, Mask: shuffle.SectionRowf},
		{Kind: shuffle.ItemDealAll, Mask: shuffle.SectionAll},
	} {
		if _, err := shuffle.NewItemDealer(mode, nil, rng); !errors.Is(err, shuffle.ErrNoBadges) {
			t.Fatalf("%v without pools: expected ErrNoBadges, got %v", mode, err)
		}
	}
	if _, err := shuffle.NewItemDealer(shuffle.ItemMode{Kind: shuffle.ItemTotalRandom}, nil, rng); err != nil {
		t.Fatalf("per-slot random items do not use the pools: %v", err)
	}
}
