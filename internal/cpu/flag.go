package cpu

// Flag is a bit position within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlag sets flag in F. F's low nibble always reads 0.
func (c *CPU) setFlag(flag Flag) {
	c.F = (c.F | (1 << flag)) & 0xF0
}

// clearFlag clears flag in F.
func (c *CPU) clearFlag(flag Flag) {
	c.F = (c.F &^ (1 << flag)) & 0xF0
}

// setFlagIf sets or clears flag depending on cond.
func (c *CPU) setFlagIf(flag Flag, cond bool) {
	if cond {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// isFlagSet reports whether flag is currently set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// shouldZeroFlag sets FlagZero according to whether value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.setFlagIf(FlagZero, value == 0)
}
