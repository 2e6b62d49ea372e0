package cpu

// testBit sets Z to the complement of bit n of value, and always
// clears N and sets H (BIT n,r).
func (c *CPU) testBit(value uint8, n uint8) {
	c.setFlagIf(FlagZero, value&(1<<n) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// resetBit clears bit n of value (RES n,r).
func resetBit(value uint8, n uint8) uint8 {
	return value &^ (1 << n)
}

// setBit sets bit n of value (SET n,r).
func setBit(value uint8, n uint8) uint8 {
	return value | (1 << n)
}
