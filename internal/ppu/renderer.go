package ppu

// renderScanline fills row p.ly of the framebuffer with the
// background layer, then overlays the window layer where it's
// visible on this line.
func (p *PPU) renderScanline() {
	colours := p.colours()

	if p.LCDC.BackgroundEnabled {
		p.renderBackgroundLine(colours)
	} else {
		for x := 0; x < ScreenWidth; x++ {
			p.frame[p.ly][x] = colours[0]
		}
	}

	if p.LCDC.WindowEnabled && p.ly >= p.wy && p.wx <= 166 {
		p.renderWindowLine(colours)
		p.windowLine++
	}
}

// renderBackgroundLine decodes the 32x32 background tile map, scrolled
// by SCY/SCX, into row p.ly of the framebuffer.
func (p *PPU) renderBackgroundLine(colours [4][3]uint8) {
	y := p.ly + p.scy
	tileRow := y / 8
	rowInTile := y % 8

	for x := 0; x < ScreenWidth; x++ {
		sx := uint8(x) + p.scx
		tileCol := sx / 8

		tileID := p.tileID(p.LCDC.BackgroundTileMapAddress, tileRow, tileCol)
		low, high := p.tileRowBytes(tileID, rowInTile)

		bit := 7 - (sx % 8)
		colour := pixelColour(low, high, bit)
		p.frame[p.ly][x] = colours[colour]
	}
}

// renderWindowLine decodes the window tile map into the portion of
// row p.ly at or past WX-7, using the internal window-line counter
// (which only advances on lines the window actually draws) rather
// than LY-WY directly.
func (p *PPU) renderWindowLine(colours [4][3]uint8) {
	tileRow := p.windowLine / 8
	rowInTile := p.windowLine % 8

	startX := 0
	if p.wx >= 7 {
		startX = int(p.wx) - 7
	}

	for x := startX; x < ScreenWidth; x++ {
		wx := uint8(x - startX)
		tileCol := wx / 8

		tileID := p.tileID(p.LCDC.WindowTileMapAddress, tileRow, tileCol)
		low, high := p.tileRowBytes(tileID, rowInTile)

		bit := 7 - (wx % 8)
		colour := pixelColour(low, high, bit)
		p.frame[p.ly][x] = colours[colour]
	}
}

// tileID looks up the tile index at (row, col) within the 32x32 tile
// map starting at mapBase.
func (p *PPU) tileID(mapBase uint16, row, col uint8) uint8 {
	offset := mapBase - 0x8000 + uint16(row)*32 + uint16(col)
	return p.vram.Read(offset)
}

// tileRowBytes returns the two bitplane bytes for one row of the
// given tile, honouring LCDC's signed/unsigned tile-data addressing.
func (p *PPU) tileRowBytes(tileID uint8, row uint8) (low, high uint8) {
	var base uint16
	if p.LCDC.UsingSignedTileData() {
		base = uint16(0x9000-0x8000) + uint16(int16(int8(tileID)))*16
	} else {
		base = uint16(tileID) * 16
	}
	offset := base + uint16(row)*2
	return p.vram.Read(offset), p.vram.Read(offset + 1)
}

// pixelColour combines the low and high bitplane bytes at bit to
// produce a 2-bit colour number.
func pixelColour(low, high uint8, bit uint8) uint8 {
	var colour uint8
	if low&(1<<bit) != 0 {
		colour |= 1
	}
	if high&(1<<bit) != 0 {
		colour |= 2
	}
	return colour
}
