package cpu

// buildDispatchTable fills every one of the 256 opcode slots. Undocumented
// opcodes are left at their default, a resolver that recovers the opcode
// byte and an operation that panics with it; every documented opcode below
// overwrites one slot with its real resolver, operation and base cycle
// count.
func (c *CPU) buildDispatchTable() {
	for i := range c.dispatch {
		c.dispatch[i] = instruction{resolve: addrOpcode, execute: opIllegal, baseCycles: 0}
	}

	set := func(opcode uint8, resolve resolver, execute operation, cycles int32) {
		c.dispatch[opcode] = instruction{resolve: resolve, execute: execute, baseCycles: cycles}
	}

	// LDA
	set(0xA9, addrImmediate, opLDA, 2)
	set(0xA5, addrZeroPage, opLDA, 3)
	set(0xB5, addrZeroPageX, opLDA, 4)
	set(0xAD, addrAbsolute, opLDA, 4)
	set(0xBD, addrAbsoluteX, opLDA, 4)
	set(0xB9, addrAbsoluteY, opLDA, 4)
	set(0xA1, addrIndexedIndirect, opLDA, 6)
	set(0xB1, addrIndirectIndexed, opLDA, 5)

	// LDX
	set(0xA2, addrImmediate, opLDX, 2)
	set(0xA6, addrZeroPage, opLDX, 3)
	set(0xB6, addrZeroPageY, opLDX, 4)
	set(0xAE, addrAbsolute, opLDX, 4)
	set(0xBE, addrAbsoluteY, opLDX, 4)

	// LDY
	set(0xA0, addrImmediate, opLDY, 2)
	set(0xA4, addrZeroPage, opLDY, 3)
	set(0xB4, addrZeroPageX, opLDY, 4)
	set(0xAC, addrAbsolute, opLDY, 4)
	set(0xBC, addrAbsoluteX, opLDY, 4)

	// STA
	set(0x85, addrZeroPage, opSTA, 3)
	set(0x95, addrZeroPageX, opSTA, 4)
	set(0x8D, addrAbsolute, opSTA, 4)
	set(0x9D, addrAbsoluteXFixed, opSTA, 5)
	set(0x99, addrAbsoluteYFixed, opSTA, 5)
	set(0x81, addrIndexedIndirect, opSTA, 6)
	set(0x91, addrIndirectIndexedFixed, opSTA, 6)

	// STX / STY
	set(0x86, addrZeroPage, opSTX, 3)
	set(0x96, addrZeroPageY, opSTX, 4)
	set(0x8E, addrAbsolute, opSTX, 4)
	set(0x84, addrZeroPage, opSTY, 3)
	set(0x94, addrZeroPageX, opSTY, 4)
	set(0x8C, addrAbsolute, opSTY, 4)

	// Register transfers
	set(0xAA, addrImplied, opTAX, 2)
	set(0xA8, addrImplied, opTAY, 2)
	set(0x8A, addrImplied, opTXA, 2)
	set(0x98, addrImplied, opTYA, 2)
	set(0xBA, addrImplied, opTSX, 2)
	set(0x9A, addrImplied, opTXS, 2)

	// Stack
	set(0x48, addrImplied, opPHA, 3)
	set(0x08, addrImplied, opPHP, 3)
	set(0x68, addrImplied, opPLA, 4)
	set(0x28, addrImplied, opPLP, 4)

	// Logical
	set(0x29, addrImmediate, opAND, 2)
	set(0x25, addrZeroPage, opAND, 3)
	set(0x35, addrZeroPageX, opAND, 4)
	set(0x2D, addrAbsolute, opAND, 4)
	set(0x3D, addrAbsoluteX, opAND, 4)
	set(0x39, addrAbsoluteY, opAND, 4)
	set(0x21, addrIndexedIndirect, opAND, 6)
	set(0x31, addrIndirectIndexed, opAND, 5)

	set(0x49, addrImmediate, opEOR, 2)
	set(0x45, addrZeroPage, opEOR, 3)
	set(0x55, addrZeroPageX, opEOR, 4)
	set(0x4D, addrAbsolute, opEOR, 4)
	set(0x5D, addrAbsoluteX, opEOR, 4)
	set(0x59, addrAbsoluteY, opEOR, 4)
	set(0x41, addrIndexedIndirect, opEOR, 6)
	set(0x51, addrIndirectIndexed, opEOR, 5)

	set(0x09, addrImmediate, opORA, 2)
	set(0x05, addrZeroPage, opORA, 3)
	set(0x15, addrZeroPageX, opORA, 4)
	set(0x0D, addrAbsolute, opORA, 4)
	set(0x1D, addrAbsoluteX, opORA, 4)
	set(0x19, addrAbsoluteY, opORA, 4)
	set(0x01, addrIndexedIndirect, opORA, 6)
	set(0x11, addrIndirectIndexed, opORA, 5)

	set(0x24, addrZeroPage, opBIT, 3)
	set(0x2C, addrAbsolute, opBIT, 4)

	// Arithmetic
	set(0x69, addrImmediate, opADC, 2)
	set(0x65, addrZeroPage, opADC, 3)
	set(0x75, addrZeroPageX, opADC, 4)
	set(0x6D, addrAbsolute, opADC, 4)
	set(0x7D, addrAbsoluteX, opADC, 4)
	set(0x79, addrAbsoluteY, opADC, 4)
	set(0x61, addrIndexedIndirect, opADC, 6)
	set(0x71, addrIndirectIndexed, opADC, 5)

	set(0xE9, addrImmediate, opSBC, 2)
	set(0xE5, addrZeroPage, opSBC, 3)
	set(0xF5, addrZeroPageX, opSBC, 4)
	set(0xED, addrAbsolute, opSBC, 4)
	set(0xFD, addrAbsoluteX, opSBC, 4)
	set(0xF9, addrAbsoluteY, opSBC, 4)
	set(0xE1, addrIndexedIndirect, opSBC, 6)
	set(0xF1, addrIndirectIndexed, opSBC, 5)

	set(0xC9, addrImmediate, opCMP, 2)
	set(0xC5, addrZeroPage, opCMP, 3)
	set(0xD5, addrZeroPageX, opCMP, 4)
	set(0xCD, addrAbsolute, opCMP, 4)
	set(0xDD, addrAbsoluteX, opCMP, 4)
	set(0xD9, addrAbsoluteY, opCMP, 4)
	set(0xC1, addrIndexedIndirect, opCMP, 6)
	set(0xD1, addrIndirectIndexed, opCMP, 5)

	set(0xE0, addrImmediate, opCPX, 2)
	set(0xE4, addrZeroPage, opCPX, 3)
	set(0xEC, addrAbsolute, opCPX, 4)

	set(0xC0, addrImmediate, opCPY, 2)
	set(0xC4, addrZeroPage, opCPY, 3)
	set(0xCC, addrAbsolute, opCPY, 4)

	// Increments / decrements
	set(0xE6, addrZeroPage, opINC, 5)
	set(0xF6, addrZeroPageX, opINC, 6)
	set(0xEE, addrAbsolute, opINC, 6)
	set(0xFE, addrAbsoluteXFixed, opINC, 7)
	set(0xE8, addrImplied, opINX, 2)
	set(0xC8, addrImplied, opINY, 2)

	set(0xC6, addrZeroPage, opDEC, 5)
	set(0xD6, addrZeroPageX, opDEC, 6)
	set(0xCE, addrAbsolute, opDEC, 6)
	set(0xDE, addrAbsoluteXFixed, opDEC, 7)
	set(0xCA, addrImplied, opDEX, 2)
	set(0x88, addrImplied, opDEY, 2)

	// Shifts / rotates
	set(0x0A, addrAccumulator, opASLAcc, 2)
	set(0x06, addrZeroPage, opASLMem, 5)
	set(0x16, addrZeroPageX, opASLMem, 6)
	set(0x0E, addrAbsolute, opASLMem, 6)
	set(0x1E, addrAbsoluteXFixed, opASLMem, 7)

	set(0x4A, addrAccumulator, opLSRAcc, 2)
	set(0x46, addrZeroPage, opLSRMem, 5)
	set(0x56, addrZeroPageX, opLSRMem, 6)
	set(0x4E, addrAbsolute, opLSRMem, 6)
	set(0x5E, addrAbsoluteXFixed, opLSRMem, 7)

	set(0x2A, addrAccumulator, opROLAcc, 2)
	set(0x26, addrZeroPage, opROLMem, 5)
	set(0x36, addrZeroPageX, opROLMem, 6)
	set(0x2E, addrAbsolute, opROLMem, 6)
	set(0x3E, addrAbsoluteXFixed, opROLMem, 7)

	set(0x6A, addrAccumulator, opRORAcc, 2)
	set(0x66, addrZeroPage, opRORMem, 5)
	set(0x76, addrZeroPageX, opRORMem, 6)
	set(0x6E, addrAbsolute, opRORMem, 6)
	set(0x7E, addrAbsoluteXFixed, opRORMem, 7)

	// Jumps and calls
	set(0x4C, addrAbsolute, opJMP, 3)
	set(0x6C, addrIndirect, opJMP, 5)
	set(0x20, addrAbsolute, opJSR, 6)
	set(0x60, addrImplied, opRTS, 6)

	// Branches
	set(0x90, addrRelative, opBCC, 2)
	set(0xB0, addrRelative, opBCS, 2)
	set(0xF0, addrRelative, opBEQ, 2)
	set(0xD0, addrRelative, opBNE, 2)
	set(0x30, addrRelative, opBMI, 2)
	set(0x10, addrRelative, opBPL, 2)
	set(0x70, addrRelative, opBVS, 2)
	set(0x50, addrRelative, opBVC, 2)

	// Status flag changes
	set(0x18, addrImplied, opCLC, 2)
	set(0x38, addrImplied, opSEC, 2)
	set(0xD8, addrImplied, opCLD, 2)
	set(0xF8, addrImplied, opSED, 2)
	set(0x58, addrImplied, opCLI, 2)
	set(0x78, addrImplied, opSEI, 2)
	set(0xB8, addrImplied, opCLV, 2)

	// System
	set(0x00, addrImplied, opBRK, 7)
	set(0xEA, addrImplied, opNOP, 2)
	set(0x40, addrImplied, opRTI, 6)
}
