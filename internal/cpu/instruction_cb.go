package cpu

import "fmt"

// InstructionSetCB holds the 256 CB-prefixed instructions: rotates,
// shifts, swap, and the bit-test/reset/set family, each available
// against any of the seven registers or (HL). It is built by the
// generate* functions below rather than written out literally, since
// the opcode space is a regular function of (operation, register).
var InstructionSetCB [256]Instruction

func init() {
	generateRotateInstructionsCB()
	generateShiftInstructionsCB()
	generateSwapInstructionsCB()
	generateBitInstructionsCB()
}

func defineCB(opcode uint8, name string, execute func(cpu *CPU, operands []uint8)) {
	InstructionSetCB[opcode] = Instruction{Name: name, Length: 2, Cycles: 2, Execute: execute}
}

// cbRegisterNames names the eight operands a CB opcode's low 3 bits
// select, in table order.
var cbRegisterNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// withOperand8 reads the operand named by reg (one of
// the cpu's plain registers, or (HL) read through the bus), passes it
// through op, and writes the result back the same way. (HL) costs an
// extra memory cycle each way, reflected by Cycles=4 for those table
// entries versus Cycles=2 for register operands.
func (c *CPU) withOperand8(reg uint8, op func(uint8) uint8) {
	if reg == 6 {
		value := c.mmu.Read(c.HL.Uint16())
		c.mmu.Write(c.HL.Uint16(), op(value))
		return
	}
	r := c.registerIndex(reg)
	*r = op(*r)
}

// registerIndex returns a pointer to the plain register CB opcodes
// index 0,1,2,3,4,5,7 as B,C,D,E,H,L,A. Index 6, (HL), has no
// register backing and must be special-cased by the caller.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("cpu: invalid register index %d", index))
}

func generateRotateInstructionsCB() {
	ops := []struct {
		base uint8
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{0x00, "RLC", (*CPU).rotateLeft},
		{0x08, "RRC", (*CPU).rotateRight},
		{0x10, "RL", (*CPU).rotateLeftThroughCarry},
		{0x18, "RR", (*CPU).rotateRightThroughCarry},
	}
	for _, o := range ops {
		o := o
		for reg := uint8(0); reg < 8; reg++ {
			reg := reg
			cycles := uint8(2)
			if reg == 6 {
				cycles = 4
			}
			InstructionSetCB[o.base+reg] = Instruction{
				Name:   fmt.Sprintf("%s %s", o.name, cbRegisterNames[reg]),
				Length: 2, Cycles: cycles,
				Execute: func(cpu *CPU, _ []uint8) {
					cpu.withOperand8(reg, func(v uint8) uint8 { return o.fn(cpu, v) })
				},
			}
		}
	}
}

func generateShiftInstructionsCB() {
	ops := []struct {
		base uint8
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{0x20, "SLA", (*CPU).shiftLeft},
		{0x28, "SRA", (*CPU).shiftRightArithmetic},
		{0x38, "SRL", (*CPU).shiftRightLogical},
	}
	for _, o := range ops {
		o := o
		for reg := uint8(0); reg < 8; reg++ {
			reg := reg
			cycles := uint8(2)
			if reg == 6 {
				cycles = 4
			}
			InstructionSetCB[o.base+reg] = Instruction{
				Name:   fmt.Sprintf("%s %s", o.name, cbRegisterNames[reg]),
				Length: 2, Cycles: cycles,
				Execute: func(cpu *CPU, _ []uint8) {
					cpu.withOperand8(reg, func(v uint8) uint8 { return o.fn(cpu, v) })
				},
			}
		}
	}
}

func generateSwapInstructionsCB() {
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg
		cycles := uint8(2)
		if reg == 6 {
			cycles = 4
		}
		InstructionSetCB[0x30+reg] = Instruction{
			Name:   fmt.Sprintf("SWAP %s", cbRegisterNames[reg]),
			Length: 2, Cycles: cycles,
			Execute: func(cpu *CPU, _ []uint8) {
				cpu.withOperand8(reg, cpu.swap)
			},
		}
	}
}

// generateBitInstructionsCB builds BIT/RES/SET for every (bit,
// register) combination: 0x40-0x7F BIT, 0x80-0xBF RES, 0xC0-0xFF SET.
func generateBitInstructionsCB() {
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		for reg := uint8(0); reg < 8; reg++ {
			reg := reg

			if reg == 6 {
				defineCB(0x40+bit*8+reg, fmt.Sprintf("BIT %d, (HL)", bit), func(cpu *CPU, _ []uint8) {
					cpu.testBit(cpu.mmu.Read(cpu.HL.Uint16()), bit)
				})
				InstructionSetCB[0x40+bit*8+reg].Cycles = 3
				defineCB(0x80+bit*8+reg, fmt.Sprintf("RES %d, (HL)", bit), func(cpu *CPU, _ []uint8) {
					cpu.mmu.Write(cpu.HL.Uint16(), resetBit(cpu.mmu.Read(cpu.HL.Uint16()), bit))
				})
				InstructionSetCB[0x80+bit*8+reg].Cycles = 4
				defineCB(0xC0+bit*8+reg, fmt.Sprintf("SET %d, (HL)", bit), func(cpu *CPU, _ []uint8) {
					cpu.mmu.Write(cpu.HL.Uint16(), setBit(cpu.mmu.Read(cpu.HL.Uint16()), bit))
				})
				InstructionSetCB[0xC0+bit*8+reg].Cycles = 4
				continue
			}

			r := reg
			defineCB(0x40+bit*8+r, fmt.Sprintf("BIT %d, %s", bit, cbRegisterNames[r]), func(cpu *CPU, _ []uint8) {
				cpu.testBit(*cpu.registerIndex(r), bit)
			})
			defineCB(0x80+bit*8+r, fmt.Sprintf("RES %d, %s", bit, cbRegisterNames[r]), func(cpu *CPU, _ []uint8) {
				reg := cpu.registerIndex(r)
				*reg = resetBit(*reg, bit)
			})
			defineCB(0xC0+bit*8+r, fmt.Sprintf("SET %d, %s", bit, cbRegisterNames[r]), func(cpu *CPU, _ []uint8) {
				reg := cpu.registerIndex(r)
				*reg = setBit(*reg, bit)
			})
		}
	}
}
