package ppu

import (
	"testing"

	"github.com/kobold-labs/dmg-go/internal/interrupts"
	"github.com/kobold-labs/dmg-go/internal/ppu/lcd"
	"github.com/kobold-labs/dmg-go/internal/ram"
)

func newTestPPU() *PPU {
	return New(ram.NewBank(0x2000), interrupts.NewController())
}

func TestTick_OAMToTransfer(t *testing.T) {
	p := newTestPPU()
	p.STAT.Mode = lcd.OAM
	p.cycle = 0

	for i := 0; i < oamCycles; i++ {
		p.Tick()
	}
	if p.STAT.Mode != lcd.Transfer {
		t.Errorf("expected mode Transfer after %d ticks, got %d", oamCycles, p.STAT.Mode)
	}
}

func TestTick_TransferToHBlankRendersScanline(t *testing.T) {
	p := newTestPPU()
	p.STAT.Mode = lcd.Transfer
	p.cycle = oamCycles

	for i := 0; i < transferCycles; i++ {
		p.Tick()
	}
	if p.STAT.Mode != lcd.HBlank {
		t.Errorf("expected mode HBlank after transfer, got %d", p.STAT.Mode)
	}
	if p.frame[0][0] != p.colours()[0] {
		t.Errorf("expected scanline 0 rendered in colour 0, got %v", p.frame[0][0])
	}
}

func TestAdvanceScanline_EntersVBlankAndRequestsInterrupt(t *testing.T) {
	p := newTestPPU()
	p.ly = vblankStart - 1
	p.STAT.Mode = lcd.HBlank
	p.cycle = scanlineCycles - 1

	p.Tick()

	if p.ly != vblankStart {
		t.Errorf("expected LY=%d, got %d", vblankStart, p.ly)
	}
	if p.STAT.Mode != lcd.VBlank {
		t.Errorf("expected mode VBlank, got %d", p.STAT.Mode)
	}
	if p.irq.Flag&(1<<interrupts.VBlankFlag) == 0 {
		t.Errorf("expected VBlank interrupt requested, got IF=0x%02X", p.irq.Flag)
	}
	if !p.HasFrame() {
		t.Errorf("expected a completed frame to be ready")
	}
}

func TestAdvanceScanline_WrapsToScanlineZero(t *testing.T) {
	p := newTestPPU()
	p.ly = lastScanline
	p.STAT.Mode = lcd.VBlank
	p.cycle = scanlineCycles - 1

	p.Tick()

	if p.ly != 0 {
		t.Errorf("expected LY to wrap to 0, got %d", p.ly)
	}
	if p.STAT.Mode != lcd.OAM {
		t.Errorf("expected mode OAM after wrap, got %d", p.STAT.Mode)
	}
}

func TestLYCCoincidenceFlag(t *testing.T) {
	p := newTestPPU()
	p.lyc = 10
	p.ly = 9
	p.checkCoincidence()
	if p.STAT.Coincidence {
		t.Errorf("expected no coincidence at LY=9, LYC=10")
	}
	p.ly = 10
	p.checkCoincidence()
	if !p.STAT.Coincidence {
		t.Errorf("expected coincidence at LY=LYC=10")
	}
}

func TestDisablingLCDResetsScanlinePosition(t *testing.T) {
	p := newTestPPU()
	p.ly = 80
	p.cycle = 200
	p.STAT.Mode = lcd.Transfer

	p.Write(0xFF40, 0x00) // LCDC: disabled
	if p.ly != 0 || p.cycle != 0 {
		t.Errorf("expected LY and cycle reset, got LY=%d cycle=%d", p.ly, p.cycle)
	}
	if p.STAT.Mode != lcd.HBlank {
		t.Errorf("expected mode reset to HBlank, got %d", p.STAT.Mode)
	}
}

func TestDisabledLCDDoesNotTick(t *testing.T) {
	p := newTestPPU()
	p.LCDC.Enabled = false
	before := p.cycle
	p.Tick()
	if p.cycle != before {
		t.Errorf("expected cycle counter frozen while LCD is off")
	}
}
