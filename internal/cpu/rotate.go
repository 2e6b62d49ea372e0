package cpu

// rotateLeft rotates value left by one bit, with bit 7 copied into
// both bit 0 and the carry flag (RLC).
func (c *CPU) rotateLeft(value uint8) uint8 {
	carry := value&0x80 != 0
	result := value<<1 | value>>7
	c.finishRotate(result, carry)
	return result
}

// rotateRight rotates value right by one bit, with bit 0 copied into
// both bit 7 and the carry flag (RRC).
func (c *CPU) rotateRight(value uint8) uint8 {
	carry := value&0x01 != 0
	result := value>>1 | value<<7
	c.finishRotate(result, carry)
	return result
}

// rotateLeftThroughCarry rotates value left by one bit through the
// carry flag (RL): the old carry becomes bit 0, bit 7 becomes the
// new carry.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 1
	}
	carry := value&0x80 != 0
	result := value<<1 | oldCarry
	c.finishRotate(result, carry)
	return result
}

// rotateRightThroughCarry rotates value right by one bit through the
// carry flag (RR).
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	oldCarry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		oldCarry = 0x80
	}
	carry := value&0x01 != 0
	result := value>>1 | oldCarry
	c.finishRotate(result, carry)
	return result
}

func (c *CPU) finishRotate(result uint8, carry bool) {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagIf(FlagCarry, carry)
	c.shouldZeroFlag(result)
}

// rotateLeftAccumulator implements RLCA: like RLC A, but Z always
// clears regardless of the result.
func (c *CPU) rotateLeftAccumulator() {
	c.A = c.rotateLeft(c.A)
	c.clearFlag(FlagZero)
}

// rotateRightAccumulator implements RRCA.
func (c *CPU) rotateRightAccumulator() {
	c.A = c.rotateRight(c.A)
	c.clearFlag(FlagZero)
}

// rotateLeftAccumulatorThroughCarry implements RLA.
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	c.A = c.rotateLeftThroughCarry(c.A)
	c.clearFlag(FlagZero)
}

// rotateRightAccumulatorThroughCarry implements RRA.
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	c.A = c.rotateRightThroughCarry(c.A)
	c.clearFlag(FlagZero)
}
