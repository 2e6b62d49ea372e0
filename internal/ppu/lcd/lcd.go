// Package lcd holds the LCD control and status registers (LCDC/STAT)
// that govern how the ppu package renders and reports its timing.
package lcd

import (
	"fmt"

	"github.com/kobold-labs/dmg-go/pkg/bits"
)

// Mode is one of the four phases the PPU cycles through each scanline.
type Mode = int

const (
	// HBlank: the CPU may access both VRAM and OAM.
	HBlank Mode = iota
	// VBlank: the CPU may access both VRAM and OAM.
	VBlank
	// OAM: sprite attribute search; OAM is inaccessible.
	OAM
	// Transfer: pixels are being shifted to the LCD; VRAM is inaccessible.
	Transfer
)

const (
	// ControlRegister is the address of LCDC.
	ControlRegister = 0xFF40
	// StatusRegister is the address of STAT.
	StatusRegister = 0xFF41
)

// Controller is the LCDC register: the master enable plus the tile
// map/data selects the renderer consults for background and window.
type Controller struct {
	Enabled                  bool
	WindowTileMapAddress     uint16 // 0x9800 or 0x9C00
	WindowEnabled            bool
	TileDataAddress          uint16 // 0x8000 or 0x8800
	BackgroundTileMapAddress uint16 // 0x9800 or 0x9C00
	BackgroundEnabled        bool
}

// NewController returns an LCDC register in its post-boot state.
func NewController() *Controller {
	return &Controller{
		WindowTileMapAddress:     0x9800,
		BackgroundTileMapAddress: 0x9800,
		TileDataAddress:          0x8000,
		BackgroundEnabled:        true,
		Enabled:                  true,
	}
}

// Write decodes value into LCDC's constituent fields.
func (c *Controller) Write(value uint8) {
	c.Enabled = bits.Test(value, 7)
	if bits.Test(value, 6) {
		c.WindowTileMapAddress = 0x9C00
	} else {
		c.WindowTileMapAddress = 0x9800
	}
	c.WindowEnabled = bits.Test(value, 5)
	if bits.Test(value, 4) {
		c.TileDataAddress = 0x8000
	} else {
		c.TileDataAddress = 0x8800
	}
	if bits.Test(value, 3) {
		c.BackgroundTileMapAddress = 0x9C00
	} else {
		c.BackgroundTileMapAddress = 0x9800
	}
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read re-encodes LCDC's fields into a register byte. Bits 1-2
// (sprite enable/size) always read 0: sprites aren't rendered.
func (c *Controller) Read() uint8 {
	var value uint8
	value = bits.SetIf(value, 7, c.Enabled)
	value = bits.SetIf(value, 6, c.WindowTileMapAddress == 0x9C00)
	value = bits.SetIf(value, 5, c.WindowEnabled)
	value = bits.SetIf(value, 4, c.TileDataAddress == 0x8000)
	value = bits.SetIf(value, 3, c.BackgroundTileMapAddress == 0x9C00)
	value = bits.SetIf(value, 0, c.BackgroundEnabled)
	return value
}

// UsingSignedTileData reports whether tile indices in the 0x8800
// addressing mode are signed, biased around tile 0 at 0x9000.
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}

// Status is the STAT register: the current mode, the LYC=LY
// coincidence flag, and which of those four sources raise the LCD
// STAT interrupt.
type Status struct {
	CoincidenceInterrupt bool
	OAMInterrupt         bool
	VBlankInterrupt      bool
	HBlankInterrupt      bool
	Coincidence          bool
	Mode                 Mode
}

// NewStatus returns a STAT register in its post-boot state.
func NewStatus() *Status {
	return &Status{}
}

// Write updates the four interrupt-source enable bits; the
// coincidence flag and mode bits are read-only from the bus.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = value&0x40 != 0
	s.OAMInterrupt = value&0x20 != 0
	s.VBlankInterrupt = value&0x10 != 0
	s.HBlankInterrupt = value&0x08 != 0
}

// Read re-encodes STAT's fields into a register byte. Bit 7 always
// reads 1.
func (s *Status) Read() uint8 {
	value := uint8(0x80)
	if s.CoincidenceInterrupt {
		value |= 0x40
	}
	if s.OAMInterrupt {
		value |= 0x20
	}
	if s.VBlankInterrupt {
		value |= 0x10
	}
	if s.HBlankInterrupt {
		value |= 0x08
	}
	if s.Coincidence {
		value |= 0x04
	}
	value |= uint8(s.Mode) & 0x03
	return value
}

func (s *Status) String() string {
	return fmt.Sprintf("STAT{mode=%d coincidence=%t}", s.Mode, s.Coincidence)
}
