package cpu

// opLDA, opLDX, opLDY load a register from memory and update Z/N.
func opLDA(c *CPU, m *Memory, address uint16) {
	c.A = m.Read(address)
	c.setZN(c.A)
}

func opLDX(c *CPU, m *Memory, address uint16) {
	c.X = m.Read(address)
	c.setZN(c.X)
}

func opLDY(c *CPU, m *Memory, address uint16) {
	c.Y = m.Read(address)
	c.setZN(c.Y)
}

// opSTA, opSTX, opSTY store a register to memory. No flags change.
func opSTA(c *CPU, m *Memory, address uint16) {
	m.Write(address, c.A)
}

func opSTX(c *CPU, m *Memory, address uint16) {
	m.Write(address, c.X)
}

func opSTY(c *CPU, m *Memory, address uint16) {
	m.Write(address, c.Y)
}
