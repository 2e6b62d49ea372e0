package gameboy

import (
	"image"
	"image/color"

	"github.com/kobold-labs/dmg-go/internal/ppu"
)

// newFrameImage allocates an RGBA image sized to the PPU's native
// 160x144 output.
func newFrameImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
}

// paintFrame copies frame's per-pixel RGB triples into img.
func paintFrame(img *image.RGBA, frame ppu.Frame) {
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			px := frame[y][x]
			img.Set(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}
}
