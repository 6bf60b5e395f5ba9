package cpu

// opADC adds the operand and the carry flag into A, binary (non-BCD) only.
// Carry is set on unsigned overflow past 8 bits; overflow is set on signed
// overflow, derived from the classic (~(A^op) & (A^sum) & 0x80) test.
func opADC(c *CPU, m *Memory, address uint16) {
	operand := m.Read(address)
	c.adc(operand)
}

// opSBC subtracts the operand (and borrow, i.e. NOT carry) from A. It is
// implemented as ADC on the bitwise complement of the operand, which
// produces identical carry/overflow semantics without a separate code path.
func opSBC(c *CPU, m *Memory, address uint16) {
	operand := m.Read(address)
	c.adc(operand ^ 0xFF)
}

func (c *CPU) adc(operand uint8) {
	carryIn := uint16(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}

	a := uint16(c.A)
	op := uint16(operand)
	sum := a + op + carryIn

	c.SetFlag(FlagCarry, sum > 0xFF)
	overflow := (^(a ^ op) & (a ^ sum) & 0x80) != 0
	c.SetFlag(FlagOverflow, overflow)

	c.A = uint8(sum)
	c.setZN(c.A)
}

// opCMP, opCPX, opCPY compare a register against the operand without
// storing a result: carry is set when register >= operand, Z when equal,
// N from bit 7 of the subtraction.
func opCMP(c *CPU, m *Memory, address uint16) {
	c.compare(c.A, m.Read(address))
}

func opCPX(c *CPU, m *Memory, address uint16) {
	c.compare(c.X, m.Read(address))
}

func opCPY(c *CPU, m *Memory, address uint16) {
	c.compare(c.Y, m.Read(address))
}

func (c *CPU) compare(reg, operand uint8) {
	result := reg - operand
	c.SetFlag(FlagCarry, reg >= operand)
	c.setZN(result)
}
