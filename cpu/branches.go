package cpu

// branchIf implements the shared mechanics of every conditional branch: when
// condition holds, PC is adjusted by the signed displacement the resolver
// produced, an extra cycle is charged for the taken branch, and a further
// cycle is charged if the new PC lands in a different page than the old
// one. An untaken branch costs only its base cycles.
func (c *CPU) branchIf(address uint16, condition bool) {
	if !condition {
		return
	}
	c.extraCycle = true

	offset := int8(address)
	oldPC := c.PC
	newPC := uint16(int32(oldPC) + int32(offset))
	if pageCrossed16(oldPC, newPC) {
		c.pageCrossed = true
	}
	c.PC = newPC
}

func opBCC(c *CPU, m *Memory, address uint16) { c.branchIf(address, !c.GetFlag(FlagCarry)) }
func opBCS(c *CPU, m *Memory, address uint16) { c.branchIf(address, c.GetFlag(FlagCarry)) }
func opBEQ(c *CPU, m *Memory, address uint16) { c.branchIf(address, c.GetFlag(FlagZero)) }
func opBNE(c *CPU, m *Memory, address uint16) { c.branchIf(address, !c.GetFlag(FlagZero)) }
func opBMI(c *CPU, m *Memory, address uint16) { c.branchIf(address, c.GetFlag(FlagNegative)) }
func opBPL(c *CPU, m *Memory, address uint16) { c.branchIf(address, !c.GetFlag(FlagNegative)) }
func opBVS(c *CPU, m *Memory, address uint16) { c.branchIf(address, c.GetFlag(FlagOverflow)) }
func opBVC(c *CPU, m *Memory, address uint16) { c.branchIf(address, !c.GetFlag(FlagOverflow)) }
