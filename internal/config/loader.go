package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/romshuffle/internal/catalog"
)

const (
	DefaultInput  = "Paper Mario (USA).z64"
	DefaultOutput = "Paper Mario (USA) Shuffled.z64"
)

// DefaultChecksumTool is the CRC fixer looked for next to the working directory.
var DefaultChecksumTool = filepath.Join("rn64crc", "rn64crc.exe")

// Defaults is the bottom layer of every merge.
func Defaults() RawConfig {
	return RawConfig{
		Version:  "1",
		Input:    DefaultInput,
		Output:   DefaultOutput,
		Rooms:    catalog.DefaultPath,
		RoomMode: "hammer",
		Checksum: &ChecksumConfig{Tool: DefaultChecksumTool},
	}
}

// LoadPreset reads a YAML preset. An empty path yields an empty preset.
func LoadPreset(path string) (RawConfig, error) {
	if path == "" {
		return RawConfig{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read preset: %w", err)
	}
	var cfg RawConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return cfg, nil
}

// LoadMerged merges defaults <- preset file. Flag overrides are applied
// afterwards by Resolve.
func LoadMerged(presetPath string) (RawConfig, error) {
	preset, err := LoadPreset(presetPath)
	if err != nil {
		return RawConfig{}, err
	}
	return mergeRaw(Defaults(), preset), nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where non-zero/non-nil.
// Items is replaced as a whole so sections of different modes never mix.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Input != "" {
		out.Input = b.Input
	}
	if b.Output != "" {
		out.Output = b.Output
	}
	if b.Rooms != "" {
		out.Rooms = b.Rooms
	}
	if b.Seed != "" {
		out.Seed = b.Seed
	}
	if b.QuickStart != nil {
		v := *b.QuickStart
		out.QuickStart = &v
	}
	if b.RoomMode != "" {
		out.RoomMode = b.RoomMode
	}
	if b.Items != nil {
		c := *b.Items
		c.Sections = append([]string(nil), b.Items.Sections...)
		out.Items = &c
	}
	if b.Spoiler != "" {
		out.Spoiler = b.Spoiler
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// checksum
	switch {
	case out.Checksum == nil && b.Checksum != nil:
		c := *b.Checksum
		out.Checksum = &c
	case out.Checksum != nil && b.Checksum != nil:
		c := *out.Checksum
		if b.Checksum.Tool != "" {
			c.Tool = b.Checksum.Tool
		}
		if b.Checksum.Skip != nil {
			c.Skip = b.Checksum.Skip
		}
		out.Checksum = &c
	}

	return out
}
