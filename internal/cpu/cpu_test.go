package cpu

import (
	"testing"

	"github.com/kobold-labs/dmg-go/internal/cartridge"
	"github.com/kobold-labs/dmg-go/internal/mmu"
)

var testCPU *CPU

// newTestROM returns a ROM-only cartridge image that fills the 32KiB
// ROM window, with no meaningful content.
func newTestROM() []byte {
	return make([]byte, 0x8000)
}

func testInstruction(t *testing.T, name string, opcode uint8, f func(*testing.T, Instruction)) {
	cart, err := cartridge.Load(newTestROM())
	if err != nil {
		t.Fatalf("building test cartridge: %s", err)
	}
	bus := mmu.New(cart, nil)
	testCPU = New(bus, nil)

	t.Run(name, func(t *testing.T) {
		f(t, InstructionSet[opcode])
	})
}

func testInstructionCB(t *testing.T, name string, opcode uint8, f func(*testing.T, Instruction)) {
	cart, err := cartridge.Load(newTestROM())
	if err != nil {
		t.Fatalf("building test cartridge: %s", err)
	}
	bus := mmu.New(cart, nil)
	testCPU = New(bus, nil)

	t.Run(name, func(t *testing.T) {
		f(t, InstructionSetCB[opcode])
	})
}

func TestNew(t *testing.T) {
	cart, _ := cartridge.Load(newTestROM())
	bus := mmu.New(cart, nil)
	c := New(bus, nil)

	if c.PC != 0x0100 {
		t.Errorf("expected PC 0x0100, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP 0xFFFE, got 0x%04X", c.SP)
	}
	if c.A != 0x01 || c.F != 0xB0 {
		t.Errorf("expected AF 0x01B0, got 0x%02X%02X", c.A, c.F)
	}
	if c.BC.Uint16() != 0x0013 {
		t.Errorf("expected BC 0x0013, got 0x%04X", c.BC.Uint16())
	}
	if c.DE.Uint16() != 0x00D8 {
		t.Errorf("expected DE 0x00D8, got 0x%04X", c.DE.Uint16())
	}
	if c.HL.Uint16() != 0x014D {
		t.Errorf("expected HL 0x014D, got 0x%04X", c.HL.Uint16())
	}
}

func TestInstruction_Control(t *testing.T) {
	testInstruction(t, "NOP", 0x00, func(t *testing.T, instr Instruction) {
		instr.Execute(testCPU, nil)
	})
	testInstruction(t, "HALT", 0x76, func(t *testing.T, instr Instruction) {
		testCPU.halted = false
		instr.Execute(testCPU, nil)
		if !testCPU.halted {
			t.Errorf("expected CPU to be halted")
		}
	})
	testInstruction(t, "STOP", 0x10, func(t *testing.T, instr Instruction) {
		testCPU.stopped = false
		instr.Execute(testCPU, []uint8{0x00})
		if !testCPU.stopped {
			t.Errorf("expected CPU to be stopped")
		}
	})
	testInstruction(t, "DI", 0xF3, func(t *testing.T, instr Instruction) {
		testCPU.mmu.IRQ.IME = true
		instr.Execute(testCPU, nil)
		if testCPU.mmu.IRQ.IME {
			t.Errorf("expected IME cleared")
		}
	})
	testInstruction(t, "EI", 0xFB, func(t *testing.T, instr Instruction) {
		testCPU.mmu.IRQ.IME = false
		instr.Execute(testCPU, nil)
		if !testCPU.mmu.IRQ.IME {
			t.Errorf("expected IME set")
		}
	})
}

func TestRegisterPairs_StayInSyncWithEightBitFields(t *testing.T) {
	cart, _ := cartridge.Load(newTestROM())
	bus := mmu.New(cart, nil)
	c := New(bus, nil)

	c.H, c.L = 0x12, 0x34
	if got := c.HL.Uint16(); got != 0x1234 {
		t.Errorf("expected HL to reflect H/L written directly, got 0x%04X", got)
	}

	c.HL.SetUint16(0xBEEF)
	if c.H != 0xBE || c.L != 0xEF {
		t.Errorf("expected H/L to reflect a pair write, got H=0x%02X L=0x%02X", c.H, c.L)
	}

	c.A, c.F = 0x56, 0xF0
	if got := c.AF.Uint16(); got != 0x56F0 {
		t.Errorf("expected AF to reflect A/F written directly, got 0x%04X", got)
	}
}

func TestStep_Illegal(t *testing.T) {
	rom := newTestROM()
	rom[0x0100] = 0xD3 // illegal opcode
	cart, _ := cartridge.Load(rom)
	bus := mmu.New(cart, nil)
	c := New(bus, nil)
	c.PC = 0x0100

	cycles := c.Step()
	if cycles == 0 {
		t.Errorf("expected illegal opcode to still consume cycles")
	}
	if c.PC != 0x0101 {
		t.Errorf("expected PC to advance past the illegal opcode, got 0x%04X", c.PC)
	}
}
