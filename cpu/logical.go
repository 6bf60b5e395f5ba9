package cpu

// opAND, opEOR, opORA combine the operand byte into A and update Z/N.
func opAND(c *CPU, m *Memory, address uint16) {
	c.A &= m.Read(address)
	c.setZN(c.A)
}

func opEOR(c *CPU, m *Memory, address uint16) {
	c.A ^= m.Read(address)
	c.setZN(c.A)
}

func opORA(c *CPU, m *Memory, address uint16) {
	c.A |= m.Read(address)
	c.setZN(c.A)
}

// opBIT tests A & operand without storing the result: Z comes from the
// masked result, but N and V come from bits 7 and 6 of the memory operand
// itself, not from the AND result.
func opBIT(c *CPU, m *Memory, address uint16) {
	operand := m.Read(address)
	c.SetFlag(FlagZero, c.A&operand == 0)
	c.SetFlag(FlagNegative, operand&FlagNegative != 0)
	c.SetFlag(FlagOverflow, operand&FlagOverflow != 0)
}
