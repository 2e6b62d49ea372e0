// Package cartridge parses a Game Boy ROM image's header and routes
// reads and writes for the 0x0000-0x7FFF ROM window and the
// 0xA000-0xBFFF external-RAM window to the bank controller the
// header's cartridge-type byte selects.
package cartridge

import "fmt"

// controller is implemented by every supported memory bank controller.
type controller interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Cartridge is a loaded ROM image plus its active bank controller.
type Cartridge struct {
	Header
	controller
}

// Load parses rom's header and returns a Cartridge routed through the
// bank controller its cartridge-type byte names. ROMs too short to
// hold the header (under 0x150 bytes) are rejected; everything else defaults to
// ROM-ONLY behaviour if its declared type isn't one this emulator
// implements, matching spec.md's "treat the whole space as a
// read-only prefix" core contract.
func Load(rom []byte) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("cartridge: rom too short to contain a header: %d bytes", len(rom))
	}
	header := parseHeader(rom)

	var ctrl controller
	switch header.CartridgeType {
	case MBC1, MBC1RAM, MBC1RAMBATT:
		ctrl = newMBC1(rom, header.RAMSize)
	default:
		ctrl = newROM(rom)
	}

	return &Cartridge{Header: header, controller: ctrl}, nil
}

// romOnly implements the simplest bank controller: the ROM is mapped
// directly into 0x0000-0x7FFF and writes there are ignored, per
// spec.md §4.1's ROM-protect rule. There is no external RAM.
type romOnly struct {
	rom []byte
}

func newROM(rom []byte) *romOnly {
	return &romOnly{rom: rom}
}

func (r *romOnly) Read(address uint16) uint8 {
	if int(address) < len(r.rom) {
		return r.rom[address]
	}
	return 0xFF
}

func (r *romOnly) Write(address uint16, value uint8) {
	// 0x0000-0x7FFF: ROM is read-only; 0xA000-0xBFFF: no RAM fitted.
}
