package cpu

// opJMP sets PC to the resolved address directly.
func opJMP(c *CPU, m *Memory, address uint16) {
	c.PC = address
}

// opJSR pushes the address of the last byte of the JSR instruction itself
// (PC-1, not the return address) and jumps to address. RTS undoes this by
// pulling that value and incrementing it, the traditional off-by-one
// pairing between the two instructions.
func opJSR(c *CPU, m *Memory, address uint16) {
	c.pushWord(m, c.PC-1)
	c.PC = address
}

// opRTS pulls the JSR-pushed value and adds 1 to recover the true return
// address.
func opRTS(c *CPU, m *Memory, address uint16) {
	c.PC = c.pullWord(m) + 1
}
