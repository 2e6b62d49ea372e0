package cpu

import "testing"

func TestInstruction_Jump(t *testing.T) {
	testInstruction(t, "JP a16", 0xC3, func(t *testing.T, instr Instruction) {
		instr.Execute(testCPU, []uint8{0x00, 0x01})
		if testCPU.PC != 0x0100 {
			t.Errorf("expected PC=0x0100, got 0x%04X", testCPU.PC)
		}
	})
	testInstruction(t, "JR e8 forward", 0x18, func(t *testing.T, instr Instruction) {
		testCPU.PC = 0x0200
		instr.Execute(testCPU, []uint8{0x05})
		if testCPU.PC != 0x0205 {
			t.Errorf("expected PC=0x0205, got 0x%04X", testCPU.PC)
		}
	})
	testInstruction(t, "JR e8 backward", 0x18, func(t *testing.T, instr Instruction) {
		testCPU.PC = 0x0200
		instr.Execute(testCPU, []uint8{0xFE}) // -2
		if testCPU.PC != 0x01FE {
			t.Errorf("expected PC=0x01FE, got 0x%04X", testCPU.PC)
		}
	})
	testInstruction(t, "CALL a16 / RET", 0xCD, func(t *testing.T, instr Instruction) {
		testCPU.PC = 0x0150
		testCPU.SP = 0xFFFE
		instr.Execute(testCPU, []uint8{0x00, 0x02})
		if testCPU.PC != 0x0200 {
			t.Errorf("expected PC=0x0200, got 0x%04X", testCPU.PC)
		}
		if testCPU.SP != 0xFFFC {
			t.Errorf("expected SP decremented by 2, got 0x%04X", testCPU.SP)
		}
		InstructionSet[0xC9].Execute(testCPU, nil) // RET
		if testCPU.PC != 0x0150 {
			t.Errorf("expected RET to restore PC=0x0150, got 0x%04X", testCPU.PC)
		}
	})
	testInstruction(t, "RST 0x18", 0xDF, func(t *testing.T, instr Instruction) {
		testCPU.PC = 0x0300
		testCPU.SP = 0xFFFE
		instr.Execute(testCPU, nil)
		if testCPU.PC != 0x0018 {
			t.Errorf("expected PC=0x0018, got 0x%04X", testCPU.PC)
		}
	})
	testInstruction(t, "JP NZ taken", 0xC2, func(t *testing.T, instr Instruction) {
		testCPU.clearFlag(FlagZero)
		instr.Execute(testCPU, []uint8{0x00, 0x03})
		if testCPU.PC != 0x0300 {
			t.Errorf("expected taken jump to PC=0x0300, got 0x%04X", testCPU.PC)
		}
	})
	testInstruction(t, "JP NZ not taken", 0xC2, func(t *testing.T, instr Instruction) {
		testCPU.PC = 0x0150
		testCPU.setFlag(FlagZero)
		instr.Execute(testCPU, []uint8{0x00, 0x03})
		if testCPU.PC != 0x0150 {
			t.Errorf("expected PC unchanged when not taken, got 0x%04X", testCPU.PC)
		}
	})
}
