// Package cpu emulates the Sharp LR35902, the Game Boy's CPU: its
// register file, the full primary and CB-prefixed opcode tables, and
// the fetch/execute/interrupt-service loop that drives the rest of
// the machine's components forward in lockstep with it.
package cpu

import (
	"github.com/kobold-labs/dmg-go/internal/mmu"
	"github.com/kobold-labs/dmg-go/internal/timer"
	"github.com/kobold-labs/dmg-go/pkg/log"
)

// ClockSpeed is the Game Boy's clock rate in cycles per second.
const ClockSpeed = 4194304

// CPU is the Sharp LR35902 core: registers, the interrupt master
// enable flip-flop, and the halted/stopped run state.
type CPU struct {
	Registers
	PC, SP uint16

	halted  bool
	stopped bool

	mmu *mmu.MMU
	log log.Logger

	cycles uint8 // T-cycles ticked during the instruction in progress
}

// New returns a CPU wired to bus, with registers at the values the
// DMG boot ROM leaves behind when it hands off to cartridge code at
// 0x0100.
func New(bus *mmu.MMU, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		mmu: bus,
		log: logger,
	}
	c.wirePairs()
	c.A, c.F = 0x01, 0xB0
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	return c
}

// SetLogger replaces the CPU's logger.
func (c *CPU) SetLogger(logger log.Logger) {
	c.log = logger
}

// Step either services the highest-priority pending interrupt (when
// IME is set and one is pending) or runs one instruction (or one
// halted/stopped cycle), and returns the number of T-cycles consumed.
func (c *CPU) Step() uint8 {
	c.cycles = 0

	if c.stopped {
		if c.mmu.IRQ.Pending() {
			c.stopped = false
		} else {
			c.tickFor(4)
			return c.cycles
		}
	}

	if c.halted {
		if c.mmu.IRQ.Pending() {
			c.halted = false
		} else {
			c.tickFor(4)
			return c.cycles
		}
	}

	if c.mmu.IRQ.IME && c.mmu.IRQ.Pending() {
		c.serviceInterrupt()
		return c.cycles
	}

	if !c.halted && !c.stopped {
		c.execute()
	}

	return c.cycles
}

// execute fetches, decodes and runs the instruction at PC.
func (c *CPU) execute() {
	opcode := c.fetch8()

	var instr Instruction
	extraFetched := 0
	if opcode == 0xCB {
		instr = InstructionSetCB[c.fetch8()]
		extraFetched = 1
	} else {
		instr = InstructionSet[opcode]
	}

	operands := make([]uint8, int(instr.Length)-1-extraFetched)
	for i := range operands {
		operands[i] = c.fetch8()
	}

	instr.Execute(c, operands)
	c.tickFor(uint16(instr.Cycles) * 4)
}

// serviceInterrupt jumps to the highest-priority pending, enabled
// interrupt's vector, at a flat cost of 20 cycles (5 M-cycles), the
// DMG's actual fixed interrupt dispatch latency.
func (c *CPU) serviceInterrupt() {
	flag, vector, ok := c.mmu.IRQ.Next()
	if !ok {
		return
	}

	c.halted = false
	c.mmu.IRQ.IME = false
	c.mmu.IRQ.Clear(flag)

	c.SP--
	c.mmu.Write(c.SP, uint8(c.PC>>8))
	c.SP--
	c.mmu.Write(c.SP, uint8(c.PC))
	c.PC = vector

	c.tickFor(20)
}

// fetch8 reads the byte at PC and advances PC.
func (c *CPU) fetch8() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// fetch16 reads the little-endian word at PC and advances PC by 2.
func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return uint16(high)<<8 | uint16(low)
}

// tickFor advances the timer and PPU by n T-cycles, charging them to
// the instruction or interrupt dispatch in progress.
func (c *CPU) tickFor(n uint16) {
	for i := uint16(0); i < n; i++ {
		c.mmu.Timer.Tick()
		c.mmu.PPU.Tick()
		c.cycles++
	}
}

// halt implements HALT: the CPU stops fetching instructions until an
// interrupt is pending. This emulator doesn't reproduce the HALT bug
// that occurs when IME is clear and an interrupt is already pending.
func (c *CPU) halt() {
	c.halted = true
}

// stop implements STOP: like HALT, but also resets the DIV divider.
// This emulator doesn't model the DMG's speed-switch semantics STOP
// carries on CGB hardware, since only DMG is emulated.
func (c *CPU) stop() {
	c.stopped = true
	c.mmu.Timer.Write(timer.DividerRegister, 0)
}

// illegalOpcode handles one of the eleven byte values the LR35902
// never decodes to a real instruction. Real hardware locks up; this
// emulator logs it and treats it as a one-cycle NOP so a ROM that
// stumbles into one doesn't wedge the whole session.
func illegalOpcode(c *CPU, _ []uint8) {
	c.log.Debugf("cpu: illegal opcode executed as NOP")
}
