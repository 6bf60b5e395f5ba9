// Package cpu implements a cycle-budgeted software emulator of the MOS 6502
// microprocessor: the 256-entry opcode dispatch table, the thirteen
// addressing modes, and the operation handlers behind each documented
// opcode. It executes against a flat 64 KiB Memory and has no notion of
// interrupts, decimal-mode arithmetic, or memory-mapped I/O.
package cpu

// resolver reads 0-2 operand bytes following the opcode (advancing PC) and
// returns a 16-bit value whose meaning depends on the addressing mode: an
// effective address, PC (immediate), a zero-extended branch displacement,
// the current A (accumulator, informational only) or 0 (implied); the
// operation ignores the value in the last two cases.
type resolver func(c *CPU, m *Memory) uint16

// operation performs the instruction's effect given the address the
// resolver produced.
type operation func(c *CPU, m *Memory, address uint16)

// instruction is one entry of the 256-slot dispatch table.
type instruction struct {
	resolve    resolver
	execute    operation
	baseCycles int32
}

// CPU is a MOS 6502 processor: three 8-bit registers, a stack pointer, a
// program counter, and an 8-bit status register viewed as eight flags.
type CPU struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8

	ps uint8

	// pageCrossed and extraCycle are transient penalty flags set by
	// resolvers and operations respectively, consumed and cleared by
	// Execute immediately after charging their cost. They never survive
	// past the instruction that set them.
	pageCrossed bool
	extraCycle  bool

	dispatch [256]instruction
}

// New constructs a CPU with its dispatch table built. The table is built
// once; Reset never rebuilds it.
func New() *CPU {
	c := &CPU{}
	c.buildDispatchTable()
	return c
}

// Reset clears registers and flags and zeroes memory. It is idempotent and
// does not touch the dispatch table.
func (c *CPU) Reset(m *Memory) {
	c.PC = 0xFFFC
	c.SP = 0xFF
	c.A, c.X, c.Y = 0, 0, 0
	c.ps = 0
	c.pageCrossed = false
	c.extraCycle = false
	m.Initialize()
}

// Execute runs instructions until the cycle budget is exhausted, completing
// whatever instruction is mid-stream when it runs out, and returns the
// number of cycles actually consumed. Accounting is post-hoc, so the
// returned value may exceed budget by less than the cost of the last
// instruction run (the longest instruction costs 7 cycles). Every
// documented opcode costs at least 2 cycles, so a budget of 1 runs exactly
// one instruction.
func (c *CPU) Execute(budget int32, m *Memory) int32 {
	remaining := budget
	for remaining > 0 {
		opcode := m.Read(c.PC)
		c.PC++

		ins := c.dispatch[opcode]
		address := ins.resolve(c, m)
		ins.execute(c, m, address)

		cost := ins.baseCycles
		if c.extraCycle {
			cost++
			c.extraCycle = false
		}
		if c.pageCrossed {
			cost++
			c.pageCrossed = false
		}
		remaining -= cost
	}
	return budget - remaining
}
