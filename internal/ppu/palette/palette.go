// Package palette maps the Game Boy's 2-bit colour IDs to displayable
// RGB shades, through whichever of the built-in monochrome palettes is
// selected.
package palette

const (
	// Greyscale is the default monochrome palette.
	Greyscale = iota
	// Green approximates the original DMG's green-tinted LCD.
	Green
)

// Palette is four RGB shades, indexed by a 2-bit colour ID.
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is the set of built-in palettes, indexed by Greyscale/Green.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
}

// Decode applies register as a BGP/OBP-style shade map, reducing the
// four 2-bit shade-select fields to colour IDs and returning a
// 4-entry lookup table from raw pixel colour number to display
// colour, through the palette selected by which.
func Decode(register uint8, which int) [4][3]uint8 {
	p := Palettes[which]
	var out [4][3]uint8
	for colour := 0; colour < 4; colour++ {
		shade := (register >> (uint(colour) * 2)) & 0x03
		out[colour] = p.Colors[shade]
	}
	return out
}
