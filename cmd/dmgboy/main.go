// Command dmgboy runs a Game Boy ROM in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kobold-labs/dmg-go/internal/gameboy"
	"github.com/kobold-labs/dmg-go/internal/romfile"
	"github.com/kobold-labs/dmg-go/pkg/display"
	"github.com/kobold-labs/dmg-go/pkg/log"
)

var paletteByName = map[string]int{
	"greyscale": gameboy.PaletteGreyscale,
	"green":     gameboy.PaletteGreen,
}

func main() {
	romPath := flag.String("rom", "", "ROM file to load (or pass as the first positional argument)")
	bootPath := flag.String("boot", "", "optional boot ROM file to load")
	scale := flag.Int("scale", 4, "window scale factor")
	paletteName := flag.String("palette", "greyscale", "colour palette: greyscale or green")
	flag.Parse()

	rom := *romPath
	if rom == "" && flag.NArg() > 0 {
		rom = flag.Arg(0)
	}

	logger := log.New()

	if rom == "" {
		logger.Errorf("dmgboy: no ROM file given")
		os.Exit(1)
	}

	which, ok := paletteByName[*paletteName]
	if !ok {
		logger.Errorf("dmgboy: unknown palette %q", *paletteName)
		os.Exit(1)
	}

	data, err := romfile.Load(rom)
	if err != nil {
		logger.Errorf("dmgboy: loading ROM %s: %s", rom, err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.AsPalette(which),
	}

	if *bootPath != "" {
		boot, err := romfile.Load(*bootPath)
		if err != nil {
			logger.Errorf("dmgboy: loading boot ROM %s: %s", *bootPath, err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}

	machine, err := gameboy.New(data, opts...)
	if err != nil {
		logger.Errorf("dmgboy: %s", err)
		os.Exit(1)
	}

	title := fmt.Sprintf("dmgboy - %s", rom)
	win := display.New(title, *scale)
	win.BindInput(machine)
	win.Run(machine)
	win.ShowAndRun()
}
