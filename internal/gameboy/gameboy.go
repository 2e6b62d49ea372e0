// Package gameboy wires the CPU, MMU, PPU, timer and joypad into a
// single machine and drives it one frame at a time.
package gameboy

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/kobold-labs/dmg-go/internal/cartridge"
	"github.com/kobold-labs/dmg-go/internal/cpu"
	"github.com/kobold-labs/dmg-go/internal/interrupts"
	"github.com/kobold-labs/dmg-go/internal/joypad"
	"github.com/kobold-labs/dmg-go/internal/mmu"
	"github.com/kobold-labs/dmg-go/internal/ppu"
	"github.com/kobold-labs/dmg-go/internal/timer"
	"github.com/kobold-labs/dmg-go/pkg/log"
)

// CyclesPerFrame is the number of T-cycles the DMG spends rendering
// one 160x144 frame at its native ~59.7 Hz refresh rate.
const CyclesPerFrame = 70224

// FrameRate is the target presentation rate of Run's display loop.
const FrameRate = 60

// FrameTime is how long Run waits between presented frames.
const FrameTime = time.Second / time.Duration(FrameRate)

// Machine is the single owner of a Game Boy's components: the CPU,
// MMU, PPU, timer, joypad and interrupt controller. Every other
// component holds only a back-reference into the pieces it needs.
type Machine struct {
	CPU    *cpu.CPU
	MMU    *mmu.MMU
	PPU    *ppu.PPU
	Timer  *timer.Controller
	Joypad *joypad.State
	IRQ    *interrupts.Controller

	log log.Logger

	paused        bool
	previousFrame ppu.Frame
}

// Opt configures a Machine at construction time.
type Opt func(m *Machine)

// New loads rom and returns a Machine ready to run from the DMG's
// post-boot register state.
func New(rom []byte, opts ...Opt) (*Machine, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: loading cartridge: %w", err)
	}

	logger := log.NewNullLogger()
	bus := mmu.New(cart, logger)
	core := cpu.New(bus, logger)

	m := &Machine{
		CPU:    core,
		MMU:    bus,
		PPU:    bus.PPU,
		Timer:  bus.Timer,
		Joypad: bus.Joypad,
		IRQ:    bus.IRQ,
		log:    logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Pause stops Frame from stepping the CPU; Run keeps presenting the
// last completed frame until Unpause.
func (m *Machine) Pause() { m.paused = true }

// Unpause resumes stepping the CPU after a Pause.
func (m *Machine) Unpause() { m.paused = false }

// Frame steps the CPU until the PPU completes a frame or the
// per-frame cycle budget is exhausted, then returns the framebuffer.
// A budget-exhausted frame without a completed PPU frame returns the
// previous frame, matching the DMG's frame cadence of CyclesPerFrame
// cycles every ~59.7 Hz refresh.
func (m *Machine) Frame() ppu.Frame {
	if m.paused {
		return m.previousFrame
	}

	var ticks uint32
	for ticks < CyclesPerFrame {
		ticks += uint32(m.CPU.Step())
		if m.PPU.HasFrame() {
			m.previousFrame = *m.PPU.Frame()
			return m.previousFrame
		}
	}

	return m.previousFrame
}

// Run presents frames in a fyne window at FrameRate until the window
// is closed.
func (m *Machine) Run(w fyne.Window) error {
	img := newFrameImage()
	raster := canvas.NewRasterFromImage(img)
	raster.ScaleMode = canvas.ImageScalePixels
	w.SetContent(raster)

	closed := make(chan struct{})
	w.SetOnClosed(func() { close(closed) })

	ticker := time.NewTicker(FrameTime)
	defer ticker.Stop()

	for {
		frame := m.Frame()
		paintFrame(img, frame)
		raster.Refresh()
		select {
		case <-closed:
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessInputs applies a batch of button presses and releases
// gathered since the last frame.
func (m *Machine) ProcessInputs(inputs joypad.Inputs) {
	m.Joypad.Apply(inputs)
}
