// Package display presents a Machine's framebuffer in a desktop
// window and feeds keyboard input back into its joypad.
package display

import (
	"image"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"golang.org/x/image/draw"

	"github.com/kobold-labs/dmg-go/internal/gameboy"
	"github.com/kobold-labs/dmg-go/internal/joypad"
	"github.com/kobold-labs/dmg-go/internal/ppu"
)

// keyMap names the keyboard keys that stand in for the Game Boy's
// eight physical buttons.
var keyMap = map[fyne.KeyName]joypad.Button{
	fyne.KeyZ:         joypad.ButtonA,
	fyne.KeyX:         joypad.ButtonB,
	fyne.KeyUp:        joypad.ButtonUp,
	fyne.KeyDown:      joypad.ButtonDown,
	fyne.KeyLeft:      joypad.ButtonLeft,
	fyne.KeyRight:     joypad.ButtonRight,
	fyne.KeyReturn:    joypad.ButtonStart,
	fyne.KeyBackspace: joypad.ButtonSelect,
}

// Window is a single fyne window presenting a Machine's 160x144
// framebuffer upscaled by an integer factor.
type Window struct {
	app   fyne.App
	win   fyne.Window
	scale int

	small  *image.RGBA
	scaled *image.RGBA
	raster *canvas.Raster
}

// New creates a window titled title, sized to scale times the Game
// Boy's native resolution.
func New(title string, scale int) *Window {
	if scale < 1 {
		scale = 1
	}

	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(float32(ppu.ScreenWidth*scale), float32(ppu.ScreenHeight*scale)))
	w.SetPadded(false)

	small := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	scaled := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))

	raster := canvas.NewRasterFromImage(scaled)
	raster.ScaleMode = canvas.ImageScalePixels
	w.SetContent(raster)

	return &Window{app: a, win: w, scale: scale, small: small, scaled: scaled, raster: raster}
}

// BindInput wires keyboard presses and releases into m's joypad.
func (w *Window) BindInput(m *gameboy.Machine) {
	desk, ok := w.win.Canvas().(desktop.Canvas)
	if !ok {
		return
	}
	desk.SetOnKeyDown(func(e *fyne.KeyEvent) {
		if button, ok := keyMap[e.Name]; ok {
			m.Joypad.Press(button)
		}
	})
	desk.SetOnKeyUp(func(e *fyne.KeyEvent) {
		if button, ok := keyMap[e.Name]; ok {
			m.Joypad.Release(button)
		}
	})
}

// Run starts a background goroutine that presents m's frames at
// gameboy.FrameRate, and returns at once. The goroutine never stops
// on its own. The UI event loop runs separately, on the main
// goroutine, via Window.ShowAndRun.
func (w *Window) Run(m *gameboy.Machine) {
	ticker := time.NewTicker(gameboy.FrameTime)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			w.paint(m.Frame())
			w.raster.Refresh()
		}
	}()
}

// ShowAndRun shows the window and blocks on the fyne event loop. Must
// be called from the main goroutine.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// paint renders frame into the small framebuffer image, then upscales
// it into the window's backing image with nearest-neighbour sampling.
func (w *Window) paint(frame ppu.Frame) {
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			px := frame[y][x]
			w.small.Set(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}
	draw.NearestNeighbor.Scale(w.scaled, w.scaled.Bounds(), w.small, w.small.Bounds(), draw.Over, nil)
}
