package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/romshuffle/internal/shuffle"
)

// DefaultPath is where the room data is looked for when no path is given.
// The file may be YAML or the JSON table the room data is usually shipped
// as; JSON parses as YAML.
const DefaultPath = "roomdata.json"

// Load reads, parses and validates a room data file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read room data: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// BadgesKey is the top-level key of the badge block. Every other key names
// a room.
const BadgesKey = "badges"

type badgeData struct {
	Map    []uint32 `yaml:"map"`
	Rowf   []uint32 `yaml:"rowf"`
	Merlow []uint32 `yaml:"merlow"`
	All    []uint32 `yaml:"all"`
}

// Parse decodes and validates room data.
func Parse(b []byte) (*Catalog, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse room data: %w", err)
	}

	rooms := make(map[string]Room, len(doc))
	var badges *shuffle.BadgePools
	for name, node := range doc {
		if name == BadgesKey {
			var d badgeData
			if err := node.Decode(&d); err != nil {
				return nil, fmt.Errorf("parse badges: %w", err)
			}
			p, err := shuffle.NewBadgePools(d.Map, d.Rowf, d.Merlow, d.All)
			if err != nil {
				return nil, fmt.Errorf("badges: %w", err)
			}
			badges = p
			continue
		}
		var r Room
		if err := node.Decode(&r); err != nil {
			return nil, fmt.Errorf("parse room %s: %w", name, err)
		}
		rooms[name] = r
	}

	c := New(rooms, badges)
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}
