package randomizer

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// SpoilerMeta identifies the run a spoiler belongs to.
type SpoilerMeta struct {
	Seed       string
	RoomMode   string
	ItemMode   string
	QuickStart bool
	Input      string
	Output     string
}

func hex32(v uint32) string { return fmt.Sprintf("%#08x", v) }

// Spoiler turns a run log into a JSON-compatible protobuf Struct.
func Spoiler(meta SpoilerMeta, log *Log) (*structpb.Struct, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	warps := make([]any, 0, len(log.Warps))
	for _, w := range log.Warps {
		warps = append(warps, map[string]any{
			"room":     w.Room,
			"room_ptr": hex32(w.RoomPtr),
			"warp_ptr": hex32(w.WarpPtr),
			"dest":     w.Dest,
			"entrance": float64(w.Entrance),
			"fixed":    w.Fixed,
		})
	}

	items := make([]any, 0, len(log.Items))
	for _, it := range log.Items {
		items = append(items, map[string]any{
			"section": it.Section.String(),
			"room":    it.Room,
			"offset":  fmt.Sprintf("%#x", it.Offset),
			"old":     hex32(it.Old),
			"new":     hex32(it.New),
		})
	}

	return structpb.NewStruct(map[string]any{
		"run_id":      id.String(),
		"seed":        meta.Seed,
		"room_mode":   meta.RoomMode,
		"item_mode":   meta.ItemMode,
		"quick_start": meta.QuickStart,
		"input":       meta.Input,
		"output":      meta.Output,
		"rooms":       float64(log.Rooms),
		"warps":       warps,
		"items":       items,
	})
}

// WriteSpoiler writes the spoiler for a run to path as indented JSON.
func WriteSpoiler(path string, meta SpoilerMeta, log *Log) error {
	s, err := Spoiler(meta, log)
	if err != nil {
		return fmt.Errorf("build spoiler: %w", err)
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode spoiler: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
