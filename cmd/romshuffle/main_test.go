package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testRooms = "../../internal/catalog/testdata/rooms.json"

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.z64")
	base := []string{"-in", filepath.Join(dir, "missing.z64"), "-out", out, "-rooms", testRooms, "-no-crc"}

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"-version"}, exitOK},
		{"unknown flag", []string{"-bogus"}, exitUsage},
		{"bad section", []string{"-deal-all", "shop"}, exitUsage},
		{"bad room mode", []string{"-room-mode", "sideways"}, exitUsage},
		{"bad seed", append([]string{"-seed", "banana"}, base...), exitUsage},
		{"item conflict", append([]string{"-random-items", "-shuffle-badges"}, base...), exitUsage},
		{"room conflict", append([]string{"-room-mode", "hammer", "-room-mode", "random"}, base...), exitUsage},
		{"missing rooms", []string{"-rooms", filepath.Join(dir, "nope.json"), "-out", out}, exitUsage},
		{"missing input", append([]string{"-seed", "1"}, base...), exitIO},
	}
	for _, c := range cases {
		if got := run(c.args); got != c.want {
			t.Fatalf("%s: exit %d want %d", c.name, got, c.want)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Fatalf("%s: output file created", c.name)
		}
	}
}

func TestNoOutputLeftBeforePatching(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.z64")
	out := filepath.Join(dir, "out.z64")
	if err := os.WriteFile(in, make([]byte, 0x100), 0o644); err != nil {
		t.Fatal(err)
	}
	roomsOnly := filepath.Join(dir, "rooms.json")
	if err := os.WriteFile(roomsOnly, []byte(`{"kmr_00": {"entrances": [0], "items": [], "warp_ptrs": []}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		args []string
	}{
		{"badge mode without pools", []string{"-rooms", roomsOnly, "-deal-used", "map"}},
		{"wrong signature", []string{"-rooms", testRooms}},
	}
	for _, c := range cases {
		args := append([]string{"-in", in, "-out", out, "-seed", "1", "-no-crc"}, c.args...)
		if got := run(args); got != exitUsage {
			t.Fatalf("%s: exit %d want %d", c.name, got, exitUsage)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Fatalf("%s: unpatched copy left at the output path", c.name)
		}
	}
}
