package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xtding233/romshuffle/internal/catalog"
	"github.com/xtding233/romshuffle/internal/checksum"
	"github.com/xtding233/romshuffle/internal/config"
	"github.com/xtding233/romshuffle/internal/randomizer"
	"github.com/xtding233/romshuffle/internal/rom"
	"github.com/xtding233/romshuffle/internal/shuffle"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

const (
	exitOK       = 0
	exitIO       = 1
	exitUsage    = 2
	exitChecksum = 3
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("romshuffle: ")
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("romshuffle", flag.ContinueOnError)

	var o config.Overrides
	var (
		preset      = fs.String("preset", "", "YAML preset applied before the other flags")
		in          = fs.String("in", config.DefaultInput, "source rom (big-endian .z64)")
		out         = fs.String("out", config.DefaultOutput, "patched rom to create")
		rooms       = fs.String("rooms", catalog.DefaultPath, "room data file (JSON or YAML)")
		seed        = fs.String("seed", "", "128-bit seed, decimal or 0x hex; 0 or empty picks one from the clock")
		quickStart  = fs.Bool("quick-start", false, "skip the opening at mario's house")
		spoiler     = fs.String("spoiler", "", "write a JSON spoiler log to this path")
		crcTool     = fs.String("crc-tool", config.DefaultChecksumTool, "external crc fixer")
		noCRC       = fs.Bool("no-crc", false, "leave the crc alone")
		verbose     = fs.Bool("v", false, "log every room")
		showVersion = fs.Bool("version", false, "print the version and exit")
	)

	addItem := func(kind shuffle.ItemKind) func(string) error {
		return func(s string) error {
			sec, err := shuffle.ParseSection(s)
			if err != nil {
				return err
			}
			o.ItemModes = append(o.ItemModes, config.ItemSelection{Kind: kind, Section: sec})
			return nil
		}
	}
	fs.Func("room-mode", "none, hammer or random (default hammer)", func(s string) error {
		m, err := shuffle.ParseRoomMode(s)
		if err != nil {
			return err
		}
		o.RoomModes = append(o.RoomModes, m)
		return nil
	})
	fs.BoolFunc("random-items", "replace every item with a random one", func(string) error {
		o.ItemModes = append(o.ItemModes, config.ItemSelection{Kind: shuffle.ItemTotalRandom})
		return nil
	})
	fs.BoolFunc("shuffle-badges", "shuffle every badge across the map and both shops", func(string) error {
		o.ItemModes = append(o.ItemModes, config.ItemSelection{Kind: shuffle.ItemShuffleGlobal})
		return nil
	})
	fs.Func("shuffle-local", "shuffle badges within `section` (map, rowf, merlow); repeatable", addItem(shuffle.ItemShuffleLocal))
	fs.Func("deal-used", "deal the vanilla badge placements into `section`; repeatable", addItem(shuffle.ItemDealUsed))
	fs.Func("deal-all", "deal one of every badge into `section`; repeatable", addItem(shuffle.ItemDealAll))

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *showVersion {
		fmt.Println("romshuffle", version)
		return exitOK
	}

	// only flags given explicitly override the preset
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			o.Input = in
		case "out":
			o.Output = out
		case "rooms":
			o.Rooms = rooms
		case "seed":
			o.Seed = seed
		case "quick-start":
			o.QuickStart = quickStart
		case "spoiler":
			o.Spoiler = spoiler
		case "crc-tool":
			o.ChecksumTool = crcTool
		case "no-crc":
			o.SkipChecksum = noCRC
		}
	})

	raw, err := config.LoadMerged(*preset)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	opts, err := config.Resolve(raw, o, time.Now)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	cat, err := catalog.Load(opts.Rooms)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	log.Printf("seed %s", opts.Seed)
	log.Printf("rooms %s, items %s, quick start %v", opts.RoomMode, opts.ItemMode, opts.QuickStart)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runLog, err := patch(ctx, opts, cat, *verbose)
	if err != nil {
		log.Print(err)
		if errors.Is(err, rom.ErrBadMagic) || errors.Is(err, shuffle.ErrNoBadges) {
			return exitUsage
		}
		return exitIO
	}
	log.Printf("wrote %s: %d rooms, %d warps, %d items", opts.Output, runLog.Rooms, len(runLog.Warps), len(runLog.Items))

	if opts.Spoiler != "" {
		meta := randomizer.SpoilerMeta{
			Seed:       opts.Seed.String(),
			RoomMode:   opts.RoomMode.String(),
			ItemMode:   opts.ItemMode.String(),
			QuickStart: opts.QuickStart,
			Input:      opts.Input,
			Output:     opts.Output,
		}
		if err := randomizer.WriteSpoiler(opts.Spoiler, meta, runLog); err != nil {
			log.Print(err)
			return exitIO
		}
		log.Printf("spoiler written to %s", opts.Spoiler)
	}

	if opts.SkipChecksum {
		log.Print("crc not updated (-no-crc)")
		return exitOK
	}
	if err := checksum.Fix(ctx, opts.ChecksumTool, opts.Output); err != nil {
		log.Print(err)
		if errors.Is(err, checksum.ErrToolMissing) {
			return exitChecksum
		}
		return exitIO
	}
	return exitOK
}

// patch copies the input to the output and runs the randomizer over the copy.
// The output is synced and closed before returning.
func patch(ctx context.Context, opts config.Options, cat *catalog.Catalog, verbose bool) (*randomizer.Log, error) {
	if err := copyFile(opts.Input, opts.Output); err != nil {
		return nil, err
	}

	img, f, err := rom.OpenFile(opts.Output, rom.DefaultLayout())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// nothing is patched yet; don't leave a copy that looks like output
	discard := func(err error) error {
		f.Close()
		os.Remove(opts.Output)
		return err
	}

	e, err := randomizer.New(img, cat, randomizer.Params{
		Limbs:      opts.Seed.Limbs(),
		RoomMode:   opts.RoomMode,
		ItemMode:   opts.ItemMode,
		QuickStart: opts.QuickStart,
	})
	if err != nil {
		return nil, discard(err)
	}
	if verbose {
		e.Logf = log.Printf
	}

	runLog, err := e.Run(ctx)
	if errors.Is(err, rom.ErrBadMagic) {
		return nil, discard(fmt.Errorf("%s: %w", opts.Input, err))
	}
	if err != nil {
		return nil, err
	}

	if err := f.Sync(); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return runLog, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
