// Package ppu emulates the Game Boy's picture processing unit: the
// LCDC/STAT/SCY/SCX/LY/LYC/BGP/WY/WX register file, the scanline mode
// state machine, and background/window tile rendering into a 160x144
// RGB framebuffer. Sprite (OBJ) rendering is not implemented.
package ppu

import (
	"fmt"

	"github.com/kobold-labs/dmg-go/internal/interrupts"
	"github.com/kobold-labs/dmg-go/internal/ppu/lcd"
	"github.com/kobold-labs/dmg-go/internal/ppu/palette"
	"github.com/kobold-labs/dmg-go/internal/ram"
	"github.com/kobold-labs/dmg-go/internal/types"
)

const (
	// ScreenWidth is the number of visible pixels per scanline.
	ScreenWidth = 160
	// ScreenHeight is the number of visible scanlines.
	ScreenHeight = 144
	// oamCycles is how long mode 2 (OAM search) holds each scanline.
	oamCycles = 80
	// transferCycles is how long mode 3 (pixel transfer) holds each scanline.
	transferCycles = 172
	// scanlineCycles is the total length of one scanline, visible or not.
	scanlineCycles = 456
	// vblankStart is the first scanline of vertical blank.
	vblankStart = 144
	// lastScanline is the last scanline before the frame wraps to 0.
	lastScanline = 153
)

// Frame is an RGB framebuffer addressed [y][x][channel].
type Frame [ScreenHeight][ScreenWidth][3]uint8

// PPU holds the LCD register file and renders completed scanlines
// into a framebuffer as LY advances.
type PPU struct {
	LCDC *lcd.Controller
	STAT *lcd.Status

	scy, scx uint8
	ly       uint8
	lyc      uint8
	bgp      uint8
	wy, wx   uint8

	cycle       uint16
	windowLine  uint8 // internal window-line counter, independent of LY
	frame       Frame
	frameReady  bool
	selectedPal int

	vram *ram.Bank
	irq  *interrupts.Controller
}

// New returns a PPU reading tile data and tile maps from vram, raising
// VBlank and LCD STAT interrupts through irq.
func New(vram *ram.Bank, irq *interrupts.Controller) *PPU {
	return &PPU{
		LCDC: lcd.NewController(),
		STAT: lcd.NewStatus(),
		vram: vram,
		irq:  irq,
	}
}

// SetPalette selects which built-in display palette Frame pixels are
// decoded through: palette.Greyscale or palette.Green.
func (p *PPU) SetPalette(which int) {
	p.selectedPal = which
}

// Read returns the value of the register at the given address.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case types.LCDC:
		return p.LCDC.Read()
	case types.STAT:
		return p.STAT.Read()
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.LYC:
		return p.lyc
	case types.BGP:
		return p.bgp
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	}
	panic(fmt.Sprintf("ppu: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the given address.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case types.LCDC:
		wasEnabled := p.LCDC.Enabled
		p.LCDC.Write(value)
		if wasEnabled && !p.LCDC.Enabled {
			p.disable()
		}
	case types.STAT:
		p.STAT.Write(value)
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LY:
		// read-only; writes are ignored.
	case types.LYC:
		p.lyc = value
		p.checkCoincidence()
	case types.BGP:
		p.bgp = value
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	default:
		panic(fmt.Sprintf("ppu: illegal write to address 0x%04X", address))
	}
}

// disable resets scanline position and mode when the LCD is switched
// off, matching the state the real hardware settles into.
func (p *PPU) disable() {
	p.cycle = 0
	p.ly = 0
	p.windowLine = 0
	p.STAT.Mode = lcd.HBlank
	p.checkCoincidence()
}

// Tick advances the PPU by one CPU cycle, matching the granularity
// the timer is also ticked at.
func (p *PPU) Tick() {
	if !p.LCDC.Enabled {
		return
	}

	p.cycle++

	switch p.STAT.Mode {
	case lcd.OAM:
		if p.cycle == oamCycles {
			p.STAT.Mode = lcd.Transfer
		}
	case lcd.Transfer:
		if p.cycle == oamCycles+transferCycles {
			p.STAT.Mode = lcd.HBlank
			p.renderScanline()
			p.requestStat()
		}
	case lcd.HBlank, lcd.VBlank:
		if p.cycle == scanlineCycles {
			p.cycle = 0
			p.advanceScanline()
		}
	}
}

// advanceScanline moves LY to the next line, entering VBlank at
// scanline 144 and wrapping back to OAM search at scanline 0.
func (p *PPU) advanceScanline() {
	p.ly++

	switch {
	case p.ly == vblankStart:
		p.STAT.Mode = lcd.VBlank
		p.irq.Request(interrupts.VBlankFlag)
		p.frameReady = true
	case p.ly > lastScanline:
		p.ly = 0
		p.windowLine = 0
		p.STAT.Mode = lcd.OAM
	case p.STAT.Mode == lcd.VBlank:
		// still inside vblank, nothing to do until lastScanline wraps.
	default:
		p.STAT.Mode = lcd.OAM
	}

	p.checkCoincidence()
	p.requestStat()
}

// checkCoincidence refreshes STAT's LYC=LY flag.
func (p *PPU) checkCoincidence() {
	p.STAT.Coincidence = p.ly == p.lyc
}

// requestStat raises the LCD interrupt if any of STAT's four
// interrupt sources are both enabled and currently asserted.
func (p *PPU) requestStat() {
	fire := (p.STAT.Coincidence && p.STAT.CoincidenceInterrupt) ||
		(p.STAT.Mode == lcd.HBlank && p.STAT.HBlankInterrupt) ||
		(p.STAT.Mode == lcd.VBlank && p.STAT.VBlankInterrupt) ||
		(p.STAT.Mode == lcd.OAM && p.STAT.OAMInterrupt)
	if fire {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// HasFrame reports whether a complete frame is ready for display, and
// clears the flag.
func (p *PPU) HasFrame() bool {
	ready := p.frameReady
	p.frameReady = false
	return ready
}

// Frame returns the most recently completed framebuffer.
func (p *PPU) Frame() *Frame {
	return &p.frame
}

// colours decodes the current BGP register into a 4-entry shade
// lookup through the selected display palette.
func (p *PPU) colours() [4][3]uint8 {
	return palette.Decode(p.bgp, p.selectedPal)
}
