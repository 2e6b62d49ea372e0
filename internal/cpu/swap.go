package cpu

// swap exchanges the upper and lower nibbles of value (SWAP).
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.shouldZeroFlag(result)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.clearFlag(FlagCarry)
	return result
}
