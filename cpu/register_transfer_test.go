package cpu

import "testing"

func TestTransfers(t *testing.T) {
	cases := []struct {
		name    string
		opcode  uint8
		setup   func(c *CPU)
		check   func(c *CPU) (got, want uint8)
	}{
		{"TAX", 0xAA, func(c *CPU) { c.A = 0x80 }, func(c *CPU) (uint8, uint8) { return c.X, 0x80 }},
		{"TAY", 0xA8, func(c *CPU) { c.A = 0x00 }, func(c *CPU) (uint8, uint8) { return c.Y, 0x00 }},
		{"TXA", 0x8A, func(c *CPU) { c.X = 0x7F }, func(c *CPU) (uint8, uint8) { return c.A, 0x7F }},
		{"TYA", 0x98, func(c *CPU) { c.Y = 0x01 }, func(c *CPU) (uint8, uint8) { return c.A, 0x01 }},
		{"TSX", 0xBA, func(c *CPU) { c.SP = 0xFA }, func(c *CPU) (uint8, uint8) { return c.X, 0xFA }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newTestCPU()
			c.PC = 0x0200
			tc.setup(c)
			load(m, 0x0200, tc.opcode)

			step(c, m)

			if got, want := tc.check(c); got != want {
				t.Errorf("%s: got 0x%02X, want 0x%02X", tc.name, got, want)
			}
		})
	}
}

func TestTXSDoesNotAffectFlags(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.X = 0x00
	c.SetFlag(FlagZero, false)
	load(m, 0x0200, 0x9A) // TXS

	step(c, m)

	if c.SP != 0x00 {
		t.Errorf("SP = 0x%02X, want 0x00", c.SP)
	}
	if c.GetFlag(FlagZero) {
		t.Errorf("TXS must not set Z even though X was zero")
	}
}

func TestTAXSetsNegativeFlag(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.A = 0x80
	load(m, 0x0200, 0xAA)

	step(c, m)

	if !c.GetFlag(FlagNegative) {
		t.Errorf("N flag not set for X = 0x80")
	}
}
