// types.go
package config

import "github.com/xtding233/romshuffle/internal/shuffle"

// Raw preset loaded from YAML. Pointer fields distinguish "unset" from the
// zero value so presets merge cleanly.
type RawConfig struct {
	Version    string          `yaml:"version"`
	Input      string          `yaml:"input,omitempty"`
	Output     string          `yaml:"output,omitempty"`
	Rooms      string          `yaml:"rooms,omitempty"`
	Seed       string          `yaml:"seed,omitempty"`
	QuickStart *bool           `yaml:"quick_start,omitempty"`
	RoomMode   string          `yaml:"room_mode,omitempty"` // none | hammer | random
	Items      *ItemsConfig    `yaml:"items,omitempty"`
	Spoiler    string          `yaml:"spoiler,omitempty"`
	Checksum   *ChecksumConfig `yaml:"checksum,omitempty"`
	Notes      string          `yaml:"notes,omitempty"`
}

type ItemsConfig struct {
	Mode     string   `yaml:"mode"` // none | total-random | shuffle-badges | shuffle-local | deal-used | deal-all
	Sections []string `yaml:"sections,omitempty"`
}

type ChecksumConfig struct {
	Tool string `yaml:"tool,omitempty"`
	Skip *bool  `yaml:"skip,omitempty"`
}

// Options are the resolved, immutable settings of one run.
type Options struct {
	Input      string
	Output     string
	Rooms      string
	Seed       Seed
	QuickStart bool
	RoomMode   shuffle.RoomMode
	ItemMode   shuffle.ItemMode
	Spoiler    string

	ChecksumTool string
	SkipChecksum bool

	Version string // effective preset version for tracing
}
