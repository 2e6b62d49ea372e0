package gameboy

import (
	"github.com/kobold-labs/dmg-go/internal/ppu/palette"
	"github.com/kobold-labs/dmg-go/pkg/log"
)

// WithLogger sets the Machine's logger, used for OAM DMA triggers,
// illegal opcodes, and anything else worth a Debug line.
func WithLogger(logger log.Logger) Opt {
	return func(m *Machine) {
		m.log = logger
		m.MMU.SetLogger(logger)
		m.CPU.SetLogger(logger)
	}
}

// WithBootROM records the presence of a boot ROM image. It is loaded
// but not executed: the CPU and I/O registers already start at the
// values the real boot ROM leaves behind, so there is nothing further
// for it to do. Kept as an option so a future boot-ROM interpreter has
// somewhere to attach.
func WithBootROM(rom []byte) Opt {
	return func(m *Machine) {
		m.log.Debugf("gameboy: boot ROM of %d bytes loaded but not executed", len(rom))
	}
}

// AsPalette selects one of internal/ppu/palette's built-in monochrome
// palettes for the PPU to render through.
func AsPalette(which int) Opt {
	return func(m *Machine) {
		m.PPU.SetPalette(which)
	}
}

// PaletteGreyscale and PaletteGreen name the palettes AsPalette
// accepts, mirroring internal/ppu/palette's constants for callers that
// don't want to import that package directly.
const (
	PaletteGreyscale = palette.Greyscale
	PaletteGreen     = palette.Green
)
