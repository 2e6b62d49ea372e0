// Package mmu provides the memory management unit that maps the Game
// Boy's flat 64KiB address space onto the cartridge and the other
// hardware components. The MMU is the only thing that ever resolves a
// raw address; every other package is handed a value it already owns.
package mmu

import (
	"fmt"

	"github.com/kobold-labs/dmg-go/internal/cartridge"
	"github.com/kobold-labs/dmg-go/internal/interrupts"
	"github.com/kobold-labs/dmg-go/internal/joypad"
	"github.com/kobold-labs/dmg-go/internal/ppu"
	"github.com/kobold-labs/dmg-go/internal/ram"
	"github.com/kobold-labs/dmg-go/internal/timer"
	"github.com/kobold-labs/dmg-go/internal/types"
	"github.com/kobold-labs/dmg-go/pkg/log"
)

// MMU is the Game Boy's memory bus. It owns the backing stores for
// VRAM, work RAM, OAM and high RAM directly, and delegates register
// reads and writes in 0xFF00-0xFFFF to whichever component implements
// that register.
type MMU struct {
	Cart *cartridge.Cartridge

	vram *ram.Bank // 0x8000-0x9FFF
	wram *ram.Bank // 0xC000-0xDFFF
	oam  *ram.Bank // 0xFE00-0xFE9F
	hram *ram.Bank // 0xFF80-0xFFFE

	Joypad *joypad.State
	Timer  *timer.Controller
	PPU    *ppu.PPU
	IRQ    *interrupts.Controller

	log log.Logger
}

// New wires an MMU around the given cartridge, constructing its own
// VRAM/WRAM/OAM/HRAM backing stores and the joypad, timer, PPU and
// interrupt controller it routes registers to.
func New(cart *cartridge.Cartridge, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}

	irq := interrupts.NewController()
	vram := ram.NewBank(0x2000)

	return &MMU{
		Cart:   cart,
		vram:   vram,
		wram:   ram.NewBank(0x2000),
		oam:    ram.NewBank(0xA0),
		hram:   ram.NewBank(0x7F),
		Joypad: joypad.New(irq),
		Timer:  timer.NewController(irq),
		PPU:    ppu.New(vram, irq),
		IRQ:    irq,
		log:    logger,
	}
}

// SetLogger replaces the MMU's logger.
func (m *MMU) SetLogger(logger log.Logger) {
	m.log = logger
}

// Read returns the byte at address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF, address >= 0xA000 && address <= 0xBFFF:
		return m.Cart.Read(address)
	case address >= 0x8000 && address <= 0x9FFF:
		return m.vram.Read(address - 0x8000)
	case address >= 0xC000 && address <= 0xDFFF:
		return m.wram.Read(address - 0xC000)
	case address >= 0xE000 && address <= 0xFDFF: // echo RAM
		return m.wram.Read(address - 0xE000)
	case address >= 0xFE00 && address <= 0xFE9F:
		return m.oam.Read(address - 0xFE00)
	case address >= 0xFEA0 && address <= 0xFEFF: // unusable
		return 0xFF
	case address == types.P1:
		return m.Joypad.Read()
	case address == types.DIV, address == types.TIMA, address == types.TMA, address == types.TAC:
		return m.Timer.Read(address)
	case address == types.IF:
		return m.IRQ.Read(address)
	case address == types.LCDC, address == types.STAT, address == types.SCY, address == types.SCX,
		address == types.LY, address == types.LYC, address == types.BGP, address == types.WY, address == types.WX:
		return m.PPU.Read(address)
	case address == types.DMA:
		return 0xFF
	case address >= 0xFF80 && address <= 0xFFFE:
		return m.hram.Read(address - 0xFF80)
	case address == types.IE:
		return m.IRQ.Read(address)
	case address >= 0xFF00 && address <= 0xFF7F:
		// unimplemented I/O (sound, serial, etc.) reads as 0xFF.
		return 0xFF
	}
	panic(fmt.Sprintf("mmu: illegal read from address 0x%04X", address))
}

// Write stores value at address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF, address >= 0xA000 && address <= 0xBFFF:
		m.Cart.Write(address, value)
	case address >= 0x8000 && address <= 0x9FFF:
		m.vram.Write(address-0x8000, value)
	case address >= 0xC000 && address <= 0xDFFF:
		m.wram.Write(address-0xC000, value)
	case address >= 0xE000 && address <= 0xFDFF: // echo RAM
		m.wram.Write(address-0xE000, value)
	case address >= 0xFE00 && address <= 0xFE9F:
		m.oam.Write(address-0xFE00, value)
	case address >= 0xFEA0 && address <= 0xFEFF: // unusable
		// writes are ignored
	case address == types.P1:
		m.Joypad.Write(value)
	case address == types.DIV, address == types.TIMA, address == types.TMA, address == types.TAC:
		m.Timer.Write(address, value)
	case address == types.IF:
		m.IRQ.Write(address, value)
	case address == types.LCDC, address == types.STAT, address == types.SCY, address == types.SCX,
		address == types.LY, address == types.LYC, address == types.BGP, address == types.WY, address == types.WX:
		m.PPU.Write(address, value)
	case address == types.DMA:
		m.startDMA(value)
	case address >= 0xFF80 && address <= 0xFFFE:
		m.hram.Write(address-0xFF80, value)
	case address == types.IE:
		m.IRQ.Write(address, value)
	case address >= 0xFF00 && address <= 0xFF7F:
		m.log.Debugf("mmu: unimplemented I/O write to 0x%04X", address)
	default:
		panic(fmt.Sprintf("mmu: illegal write to address 0x%04X", address))
	}
}

// startDMA performs the OAM DMA transfer triggered by a write to
// 0xFF46: 160 bytes are copied from value*0x100 into OAM. Real
// hardware spreads this over 160 M-cycles during which only HRAM is
// accessible; this emulator performs it instantly, a simplification
// recorded as an open question.
func (m *MMU) startDMA(value uint8) {
	source := uint16(value) << 8
	m.log.Debugf("mmu: OAM DMA from 0x%04X", source)
	for i := uint16(0); i < 0xA0; i++ {
		m.oam.Write(i, m.Read(source+i))
	}
}
