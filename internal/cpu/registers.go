package cpu

// Register holds one of the CPU's 8-bit values.
type Register = uint8

// RegisterPair gives a 16-bit view over two Registers the CPU already
// owns, high byte first, so that code can treat e.g. B/C as BC
// without copying.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's combined value.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 stores value across the pair's two registers.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the CPU's 8-bit register file plus the 16-bit pair
// views over it. F's low nibble always reads 0.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register

	AF, BC, DE, HL *RegisterPair
}

// wirePairs points the four RegisterPairs at r's own fields. r must
// already be at its final address (e.g. the CPU embedding it has been
// heap-allocated) — taking the field addresses any earlier leaves the
// pairs pointing at a copy that's discarded once r is copied by value.
func (r *Registers) wirePairs() {
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
}
