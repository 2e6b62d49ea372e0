package cpu

import "testing"

func TestFlags(t *testing.T) {
	testInstruction(t, "set/clear/isFlagSet", 0x00, func(t *testing.T, _ Instruction) {
		testCPU.F = 0x00

		testCPU.setFlag(FlagZero)
		if !testCPU.isFlagSet(FlagZero) {
			t.Errorf("expected zero flag set")
		}
		if testCPU.F&0x0F != 0 {
			t.Errorf("expected low nibble of F to stay zero, got 0x%02X", testCPU.F)
		}

		testCPU.clearFlag(FlagZero)
		if testCPU.isFlagSet(FlagZero) {
			t.Errorf("expected zero flag cleared")
		}

		testCPU.setFlagIf(FlagCarry, true)
		if !testCPU.isFlagSet(FlagCarry) {
			t.Errorf("expected carry flag set via setFlagIf(true)")
		}
		testCPU.setFlagIf(FlagCarry, false)
		if testCPU.isFlagSet(FlagCarry) {
			t.Errorf("expected carry flag cleared via setFlagIf(false)")
		}

		testCPU.shouldZeroFlag(0x00)
		if !testCPU.isFlagSet(FlagZero) {
			t.Errorf("expected shouldZeroFlag(0) to set the zero flag")
		}
		testCPU.shouldZeroFlag(0x01)
		if testCPU.isFlagSet(FlagZero) {
			t.Errorf("expected shouldZeroFlag(1) to clear the zero flag")
		}
	})
}
