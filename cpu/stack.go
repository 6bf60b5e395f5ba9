package cpu

// stackBase is the fixed page the stack lives in; effective address is
// stackBase + SP.
const stackBase = 0x0100

// push writes value at 0x100+SP and decrements SP (stack grows downward).
func (c *CPU) push(m *Memory, value uint8) {
	m.Write(stackBase+uint16(c.SP), value)
	c.SP--
}

// pull increments SP and reads the byte at 0x100+SP.
func (c *CPU) pull(m *Memory) uint8 {
	c.SP++
	return m.Read(stackBase + uint16(c.SP))
}

// pushWord pushes a 16-bit value high byte first, so the low byte ends up
// at the lower stack address (matches JSR/BRK, which pull it back with
// pullWord).
func (c *CPU) pushWord(m *Memory, value uint16) {
	c.push(m, uint8(value>>8))
	c.push(m, uint8(value&0xFF))
}

func (c *CPU) pullWord(m *Memory) uint16 {
	lo := uint16(c.pull(m))
	hi := uint16(c.pull(m))
	return lo | hi<<8
}

// opTSX: X <- SP, updates Z/N.
func opTSX(c *CPU, m *Memory, address uint16) {
	c.X = c.SP
	c.setZN(c.X)
}

// opTXS: SP <- X, no flag update.
func opTXS(c *CPU, m *Memory, address uint16) {
	c.SP = c.X
}

// opPHA pushes A.
func opPHA(c *CPU, m *Memory, address uint16) {
	c.push(m, c.A)
}

// opPHP pushes PS with the break and unused bits forced to 1, the
// documented "B flag quirk" on push.
func opPHP(c *CPU, m *Memory, address uint16) {
	c.push(m, c.ps|FlagBreak|FlagUnused)
}

// opPLA pulls into A, updating Z/N.
func opPLA(c *CPU, m *Memory, address uint16) {
	c.A = c.pull(m)
	c.setZN(c.A)
}

// opPLP pulls into PS verbatim.
func opPLP(c *CPU, m *Memory, address uint16) {
	c.ps = c.pull(m)
}
