package cartridge

import "strings"

// Type identifies the cartridge's memory bank controller, read from
// byte 0x0147 of the header.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
)

var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header describes the cartridge metadata stored at 0x0100-0x014F.
type Header struct {
	Title         string
	CartridgeType Type
	ROMSize       int
	RAMSize       int
}

// parseHeader reads the 0x50-byte header at ROM offsets
// 0x0100-0x014F. rom must be at least 0x150 bytes long.
func parseHeader(rom []byte) Header {
	title := strings.TrimRight(string(rom[0x134:0x144]), "\x00")
	return Header{
		Title:         title,
		CartridgeType: Type(rom[0x147]),
		ROMSize:       32 * 1024 << rom[0x148],
		RAMSize:       ramSizes[rom[0x149]],
	}
}
