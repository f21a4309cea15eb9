// resolve.go
package config

import (
	"time"

	"github.com/xtding233/romshuffle/internal/shuffle"
)

// ItemSelection is one item mode flag as given on the command line.
type ItemSelection struct {
	Kind    shuffle.ItemKind
	Section shuffle.SectionMask // zero for unmasked kinds
}

// Overrides carries command line values on top of the merged preset.
// Nil pointers and empty slices leave the preset alone. When any item or room
// selection is present it replaces the preset's mode rather than adding to it.
type Overrides struct {
	Input        *string
	Output       *string
	Rooms        *string
	Seed         *string
	QuickStart   *bool
	Spoiler      *string
	ChecksumTool *string
	SkipChecksum *bool

	RoomModes []shuffle.RoomMode
	ItemModes []ItemSelection
}

// Resolve applies overrides, validates, and turns the result into Options.
// A zero or missing seed is replaced by one derived from now.
func Resolve(raw RawConfig, o Overrides, now func() time.Time) (Options, error) {
	cfg := applyOverrides(raw, o)
	if err := ValidateRaw(cfg); err != nil {
		return Options{}, err
	}

	opts := Options{
		Input:   cfg.Input,
		Output:  cfg.Output,
		Rooms:   cfg.Rooms,
		Spoiler: cfg.Spoiler,
		Version: cfg.Version,
	}
	if cfg.QuickStart != nil {
		opts.QuickStart = *cfg.QuickStart
	}
	if cfg.Checksum != nil {
		opts.ChecksumTool = cfg.Checksum.Tool
		if cfg.Checksum.Skip != nil {
			opts.SkipChecksum = *cfg.Checksum.Skip
		}
	}

	if cfg.Seed != "" {
		s, err := ParseSeed(cfg.Seed)
		if err != nil {
			return Options{}, err
		}
		opts.Seed = s
	}
	if opts.Seed.IsZero() {
		opts.Seed = SeedFromTime(now())
	}

	var b shuffle.ModeBuilder

	if len(o.RoomModes) > 0 {
		for _, m := range o.RoomModes {
			if err := b.SelectRoom(m); err != nil {
				return Options{}, err
			}
		}
	} else {
		m, _ := shuffle.ParseRoomMode(cfg.RoomMode) // validated above
		_ = b.SelectRoom(m)
	}

	if len(o.ItemModes) > 0 {
		for _, sel := range o.ItemModes {
			if err := b.SelectItem(sel.Kind, sel.Section); err != nil {
				return Options{}, err
			}
		}
	} else if cfg.Items != nil {
		kind, _ := shuffle.ParseItemKind(cfg.Items.Mode)
		if len(cfg.Items.Sections) == 0 {
			if err := b.SelectItem(kind, 0); err != nil {
				return Options{}, err
			}
		}
		for _, s := range cfg.Items.Sections {
			sec, _ := shuffle.ParseSection(s)
			if err := b.SelectItem(kind, sec); err != nil {
				return Options{}, err
			}
		}
	}

	opts.RoomMode = b.Room()
	opts.ItemMode = b.Item()
	return opts, nil
}

func applyOverrides(raw RawConfig, o Overrides) RawConfig {
	var b RawConfig
	if o.Input != nil {
		b.Input = *o.Input
	}
	if o.Output != nil {
		b.Output = *o.Output
	}
	if o.Rooms != nil {
		b.Rooms = *o.Rooms
	}
	if o.Seed != nil {
		b.Seed = *o.Seed
	}
	b.QuickStart = o.QuickStart
	if o.Spoiler != nil {
		b.Spoiler = *o.Spoiler
	}
	if o.ChecksumTool != nil || o.SkipChecksum != nil {
		b.Checksum = &ChecksumConfig{Skip: o.SkipChecksum}
		if o.ChecksumTool != nil {
			b.Checksum.Tool = *o.ChecksumTool
		}
	}
	return mergeRaw(raw, b)
}
