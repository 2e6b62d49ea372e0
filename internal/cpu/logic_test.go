package cpu

import "testing"

func TestInstruction_Logic(t *testing.T) {
	testInstruction(t, "AND B", 0xA0, func(t *testing.T, instr Instruction) {
		testCPU.A = 0b11001100
		testCPU.B = 0b10101010
		instr.Execute(testCPU, nil)
		if testCPU.A != 0b10001000 {
			t.Errorf("expected A=0x88, got 0x%02X", testCPU.A)
		}
		if !testCPU.isFlagSet(FlagHalfCarry) || testCPU.isFlagSet(FlagCarry) {
			t.Errorf("expected H set and C clear for AND")
		}
	})
	testInstruction(t, "XOR A", 0xAF, func(t *testing.T, instr Instruction) {
		testCPU.A = 0x5A
		instr.Execute(testCPU, nil)
		if testCPU.A != 0x00 || !testCPU.isFlagSet(FlagZero) {
			t.Errorf("expected A=0 and zero flag set after XOR A, got A=0x%02X", testCPU.A)
		}
	})
	testInstruction(t, "OR B", 0xB0, func(t *testing.T, instr Instruction) {
		testCPU.A = 0b00001111
		testCPU.B = 0b11110000
		instr.Execute(testCPU, nil)
		if testCPU.A != 0xFF {
			t.Errorf("expected A=0xFF, got 0x%02X", testCPU.A)
		}
		if testCPU.isFlagSet(FlagHalfCarry) || testCPU.isFlagSet(FlagCarry) {
			t.Errorf("expected H and C clear for OR")
		}
	})
	testInstruction(t, "CPL", 0x2F, func(t *testing.T, instr Instruction) {
		testCPU.A = 0x35
		instr.Execute(testCPU, nil)
		if testCPU.A != 0xCA {
			t.Errorf("expected A=0xCA, got 0x%02X", testCPU.A)
		}
		if !testCPU.isFlagSet(FlagSubtract) || !testCPU.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected N and H set after CPL")
		}
	})
	testInstruction(t, "SCF", 0x37, func(t *testing.T, instr Instruction) {
		testCPU.clearFlag(FlagCarry)
		instr.Execute(testCPU, nil)
		if !testCPU.isFlagSet(FlagCarry) {
			t.Errorf("expected carry set")
		}
	})
	testInstruction(t, "CCF", 0x3F, func(t *testing.T, instr Instruction) {
		testCPU.setFlag(FlagCarry)
		instr.Execute(testCPU, nil)
		if testCPU.isFlagSet(FlagCarry) {
			t.Errorf("expected carry cleared by CCF")
		}
	})
}
