package cpu

// opINC, opDEC adjust a memory operand in place and update Z/N.
func opINC(c *CPU, m *Memory, address uint16) {
	value := m.Read(address) + 1
	m.Write(address, value)
	c.setZN(value)
}

func opDEC(c *CPU, m *Memory, address uint16) {
	value := m.Read(address) - 1
	m.Write(address, value)
	c.setZN(value)
}

// opINX, opINY, opDEX, opDEY adjust a register and update Z/N.
func opINX(c *CPU, m *Memory, address uint16) {
	c.X++
	c.setZN(c.X)
}

func opINY(c *CPU, m *Memory, address uint16) {
	c.Y++
	c.setZN(c.Y)
}

func opDEX(c *CPU, m *Memory, address uint16) {
	c.X--
	c.setZN(c.X)
}

func opDEY(c *CPU, m *Memory, address uint16) {
	c.Y--
	c.setZN(c.Y)
}
