package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/romshuffle/internal/shuffle"
)

var ErrInvalidConfig = errors.New("config validation failed")

// ValidateRaw checks semantic constraints of a merged RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Input == "" {
		errs = append(errs, "input is required")
	}
	if cfg.Output == "" {
		errs = append(errs, "output is required")
	}
	if cfg.Input != "" && cfg.Input == cfg.Output {
		errs = append(errs, "output must differ from input; the input is the only untouched copy")
	}
	if cfg.Rooms == "" {
		errs = append(errs, "rooms is required")
	}

	if cfg.Seed != "" {
		if _, err := ParseSeed(cfg.Seed); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if _, err := shuffle.ParseRoomMode(cfg.RoomMode); err != nil {
		errs = append(errs, "room_mode: "+err.Error())
	}

	// items
	if cfg.Items != nil {
		kind, err := shuffle.ParseItemKind(cfg.Items.Mode)
		if err != nil {
			errs = append(errs, "items.mode: "+err.Error())
		} else {
			masked := kind == shuffle.ItemShuffleLocal || kind == shuffle.ItemDealUsed || kind == shuffle.ItemDealAll
			switch {
			case masked && len(cfg.Items.Sections) == 0:
				errs = append(errs, fmt.Sprintf("items.sections is required for mode=%s", kind))
			case !masked && len(cfg.Items.Sections) > 0:
				errs = append(errs, fmt.Sprintf("items.sections is not allowed for mode=%s", kind))
			}
		}
		for i, s := range cfg.Items.Sections {
			if _, err := shuffle.ParseSection(s); err != nil {
				errs = append(errs, fmt.Sprintf("items.sections[%d]: %v", i, err))
			}
		}
	}

	if cfg.Checksum != nil && cfg.Checksum.Tool == "" && (cfg.Checksum.Skip == nil || !*cfg.Checksum.Skip) {
		errs = append(errs, "checksum.tool is required unless checksum.skip is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
