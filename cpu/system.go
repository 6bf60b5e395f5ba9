package cpu

// irqVector is the fixed location BRK reads its handler address from, the
// same vector a real 6502 shares with hardware IRQ.
const irqVector = 0xFFFE

// opNOP does nothing; it exists only to advance PC past its own opcode byte
// (already done by Execute before dispatch).
func opNOP(c *CPU, m *Memory, address uint16) {}

// opBRK is a software interrupt: it skips a padding byte, pushes the
// return address and status (with the break and unused bits forced to 1,
// mirroring PHP), sets the interrupt-disable flag, and jumps through the
// IRQ vector.
func opBRK(c *CPU, m *Memory, address uint16) {
	c.PC++
	c.pushWord(m, c.PC)
	c.push(m, c.ps|FlagBreak|FlagUnused)
	c.SetFlag(FlagInterrupt, true)
	c.PC = m.ReadWord(irqVector)
}

// opRTI restores status and PC from the stack, undoing a BRK or hardware
// interrupt. Unlike RTS, the pulled PC is used as-is with no increment.
func opRTI(c *CPU, m *Memory, address uint16) {
	c.ps = c.pull(m)
	c.PC = c.pullWord(m)
}

// opIllegal panics with the fetched opcode byte and the address it was
// fetched from. Every unused dispatch slot points here.
func opIllegal(c *CPU, m *Memory, address uint16) {
	panic(IllegalOpcodeError{Opcode: uint8(address), PC: c.PC - 1})
}
