package catalog_test

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/xtding233/romshuffle/internal/catalog"
)

func TestLoadJSONAndYAMLAgree(t *testing.T) {
	j, err := catalog.Load("testdata/rooms.json")
	if err != nil {
		t.Fatal(err)
	}
	y, err := catalog.Load("testdata/rooms.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(j.Names(), y.Names()) {
		t.Fatalf("names differ: %v vs %v", j.Names(), y.Names())
	}
	for _, n := range j.Names() {
		a, _ := j.Lookup(n)
		b, _ := y.Lookup(n)
		if !reflect.DeepEqual(normalize(a), normalize(b)) {
			t.Fatalf("%s differs: %+v vs %+v", n, a, b)
		}
	}
	r, _ := j.Lookup("kmr_00")
	if !slices.Equal(r.WarpPtrs, []uint32{0x80240E4C, 0x80242C80}) {
		t.Fatalf("kmr_00 warps %#x", r.WarpPtrs)
	}

	for _, c := range []*catalog.Catalog{j, y} {
		b := c.Badges()
		if b == nil {
			t.Fatalf("badge block not loaded")
		}
		if !slices.Equal(b.Used(), []uint32{0xE0, 0xE1, 0xE0, 0x106, 0x107, 0x113}) {
			t.Fatalf("used badges %#x", b.Used())
		}
		if !b.IsBadge(0xE2) || b.IsBadge(0xE3) {
			t.Fatalf("full badge list not honoured")
		}
	}
	if _, err := j.Lookup(catalog.BadgesKey); !errors.Is(err, catalog.ErrUnknownRoom) {
		t.Fatalf("the badge block must not become a room")
	}
}

func TestRoomsOnlyTable(t *testing.T) {
	c, err := catalog.Parse([]byte(`{"kmr_00": {"entrances": [0], "items": [], "warp_ptrs": []}}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Badges() != nil || !c.Badges().Empty() {
		t.Fatalf("a table without a badge block has no pools")
	}
}

func TestBadgeBlockErrors(t *testing.T) {
	bad := []string{
		"badges: {map: [0xE0, 0x300], all: [0xE0]}\nkmr_00: {entrances: [0]}",
		"badges: {map: nope}\nkmr_00: {entrances: [0]}",
	}
	for _, doc := range bad {
		if _, err := catalog.Parse([]byte(doc)); err == nil {
			t.Fatalf("expected %q to be rejected", doc)
		}
	}
}

// normalize treats nil and empty slices alike
func normalize(r catalog.Room) catalog.Room {
	fix := func(s []uint32) []uint32 {
		if len(s) == 0 {
			return nil
		}
		return s
	}
	return catalog.Room{Entrances: fix(r.Entrances), Items: fix(r.Items), WarpPtrs: fix(r.WarpPtrs)}
}

func TestLookupUnknown(t *testing.T) {
	c, err := catalog.Load("testdata/rooms.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Lookup("zzz_99"); !errors.Is(err, catalog.ErrUnknownRoom) {
		t.Fatalf("expected ErrUnknownRoom, got %v", err)
	}
}

func TestDestinationNames(t *testing.T) {
	c, err := catalog.Load("testdata/rooms.json")
	if err != nil {
		t.Fatal(err)
	}
	got := c.DestinationNames()
	want := []string{"kmr_00", "kmr_04", "mac_00"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for _, n := range catalog.Excluded {
		if !catalog.IsExcluded(n) {
			t.Fatalf("%s should be excluded", n)
		}
	}
	if len(catalog.Excluded) != 12 {
		t.Fatalf("expected twelve exclusions")
	}
	if catalog.IsExcluded("kmr_00") {
		t.Fatalf("kmr_00 is a valid destination")
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	c := catalog.New(map[string]catalog.Room{
		"toolongname": {Entrances: []uint32{0}},
		"kmr_00":      {Items: []uint32{4, 4}},
	}, nil)
	err := catalog.Validate(c)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	for _, frag := range []string{"toolongname", "at least one entrance", "listed twice"} {
		if !strings.Contains(err.Error(), frag) {
			t.Fatalf("error %q does not mention %q", err, frag)
		}
	}

	if err := catalog.Validate(catalog.New(nil, nil)); err == nil {
		t.Fatalf("empty catalog must fail")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := catalog.Parse([]byte("kmr_00: [1, 2")); err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, err := catalog.Load("testdata/missing.json"); err == nil {
		t.Fatalf("expected a read error")
	}
}
