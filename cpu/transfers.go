package cpu

// opTAX, opTAY, opTXA, opTYA copy a register to another, updating Z/N of
// the destination.
func opTAX(c *CPU, m *Memory, address uint16) {
	c.X = c.A
	c.setZN(c.X)
}

func opTAY(c *CPU, m *Memory, address uint16) {
	c.Y = c.A
	c.setZN(c.Y)
}

func opTXA(c *CPU, m *Memory, address uint16) {
	c.A = c.X
	c.setZN(c.A)
}

func opTYA(c *CPU, m *Memory, address uint16) {
	c.A = c.Y
	c.setZN(c.A)
}
