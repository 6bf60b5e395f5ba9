package cpu

// Status flag set/clear instructions. None of these touch Z or N.
func opCLC(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagCarry, false) }
func opSEC(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagCarry, true) }
func opCLD(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagDecimal, false) }
func opSED(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagDecimal, true) }
func opCLI(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagInterrupt, false) }
func opSEI(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagInterrupt, true) }
func opCLV(c *CPU, m *Memory, address uint16) { c.SetFlag(FlagOverflow, false) }
