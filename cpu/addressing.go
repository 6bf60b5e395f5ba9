package cpu

// pageCrossed16 reports whether base and base+index differ in their high
// byte, i.e. an indexed address computation crossed a 256-byte page.
func pageCrossed16(base, indexed uint16) bool {
	return (base^indexed)&0xFF00 != 0
}

// addrOpcode is used only by illegal-opcode dispatch slots: it recovers the
// opcode byte Execute just advanced past, so OpIllegal can report it.
func addrOpcode(c *CPU, m *Memory) uint16 {
	return uint16(m.Read(c.PC - 1))
}

// addrImplied is used by instructions with no operand bytes.
func addrImplied(c *CPU, m *Memory) uint16 {
	return 0
}

// addrAccumulator is used by the accumulator-targeting shift/rotate
// variants; the returned value is informational only, the operation reads
// c.A directly.
func addrAccumulator(c *CPU, m *Memory) uint16 {
	return uint16(c.A)
}

// addrImmediate returns the address of the operand byte itself, which the
// operation reads directly, and advances PC past it.
func addrImmediate(c *CPU, m *Memory) uint16 {
	addr := c.PC
	c.PC++
	return addr
}

// addrRelative returns the raw zero-extended displacement byte; sign
// interpretation is the branch operation's responsibility.
func addrRelative(c *CPU, m *Memory) uint16 {
	b := m.Read(c.PC)
	c.PC++
	return uint16(b)
}

// addrZeroPage reads one operand byte as an effective address in page 0.
func addrZeroPage(c *CPU, m *Memory) uint16 {
	addr := m.Read(c.PC)
	c.PC++
	return uint16(addr)
}

// addrZeroPageX wraps within page 0: (operand + X) & 0xFF.
func addrZeroPageX(c *CPU, m *Memory) uint16 {
	operand := m.Read(c.PC)
	c.PC++
	return uint16(operand + c.X)
}

// addrZeroPageY wraps within page 0: (operand + Y) & 0xFF.
func addrZeroPageY(c *CPU, m *Memory) uint16 {
	operand := m.Read(c.PC)
	c.PC++
	return uint16(operand + c.Y)
}

// addrAbsolute reads a little-endian 16-bit address.
func addrAbsolute(c *CPU, m *Memory) uint16 {
	addr := m.ReadWord(c.PC)
	c.PC += 2
	return addr
}

// addrAbsoluteX is the read-path absolute,X mode: it charges a page-cross
// penalty when base+X lands in a different page than base.
func addrAbsoluteX(c *CPU, m *Memory) uint16 {
	base := m.ReadWord(c.PC)
	c.PC += 2
	sum := base + uint16(c.X)
	if pageCrossed16(base, sum) {
		c.pageCrossed = true
	}
	return sum
}

// addrAbsoluteXFixed is the store/RMW absolute,X mode: the extra cycle is
// pre-baked into the dispatch table's base-cycle count, so no page-cross
// flag is set here.
func addrAbsoluteXFixed(c *CPU, m *Memory) uint16 {
	base := m.ReadWord(c.PC)
	c.PC += 2
	return base + uint16(c.X)
}

// addrAbsoluteY is the read-path absolute,Y mode.
func addrAbsoluteY(c *CPU, m *Memory) uint16 {
	base := m.ReadWord(c.PC)
	c.PC += 2
	sum := base + uint16(c.Y)
	if pageCrossed16(base, sum) {
		c.pageCrossed = true
	}
	return sum
}

// addrAbsoluteYFixed is the store-path absolute,Y mode: no penalty.
func addrAbsoluteYFixed(c *CPU, m *Memory) uint16 {
	base := m.ReadWord(c.PC)
	c.PC += 2
	return base + uint16(c.Y)
}

// addrIndexedIndirect ("(zp,X)"): the zero-page pointer is formed from
// (operand + X) wrapped within page 0, then dereferenced as a word, itself
// wrapping within page 0 for the high byte fetch.
func addrIndexedIndirect(c *CPU, m *Memory) uint16 {
	operand := m.Read(c.PC)
	c.PC++
	ptr := operand + c.X
	lo := uint16(m.Read(uint16(ptr)))
	hi := uint16(m.Read(uint16(ptr + 1)))
	return lo | hi<<8
}

// addrIndirectIndexed ("(zp),Y"), read path: dereference the zero-page
// pointer, then add Y, charging a page-cross penalty if that crosses a
// page.
func addrIndirectIndexed(c *CPU, m *Memory) uint16 {
	zp := m.Read(c.PC)
	c.PC++
	lo := uint16(m.Read(uint16(zp)))
	hi := uint16(m.Read(uint16(zp + 1)))
	base := lo | hi<<8
	sum := base + uint16(c.Y)
	if pageCrossed16(base, sum) {
		c.pageCrossed = true
	}
	return sum
}

// addrIndirectIndexedFixed is the store-path "(zp),Y": no penalty.
func addrIndirectIndexedFixed(c *CPU, m *Memory) uint16 {
	zp := m.Read(c.PC)
	c.PC++
	lo := uint16(m.Read(uint16(zp)))
	hi := uint16(m.Read(uint16(zp + 1)))
	base := lo | hi<<8
	return base + uint16(c.Y)
}

// addrIndirect is JMP's operand resolver. It deliberately reproduces the
// 6502's indirect-JMP page-boundary bug: when the pointer's low byte is
// 0xFF, the high-byte fetch wraps within the same page instead of crossing
// into the next one.
func addrIndirect(c *CPU, m *Memory) uint16 {
	ptr := m.ReadWord(c.PC)
	c.PC += 2

	ptrLo := ptr & 0xFF
	hiAddr := ptr&0xFF00 | (ptrLo+1)&0xFF

	lo := uint16(m.Read(ptr))
	hi := uint16(m.Read(hiAddr))
	return lo | hi<<8
}
