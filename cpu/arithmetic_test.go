package cpu

import "testing"

func TestADC(t *testing.T) {
	cases := []struct {
		name       string
		a, op      uint8
		carryIn    bool
		wantA      uint8
		wantCarry  bool
		wantOflow  bool
	}{
		{"simple", 0x10, 0x20, false, 0x30, false, false},
		{"carry out", 0xFF, 0x01, false, 0x00, true, false},
		{"carry in propagates", 0x01, 0x01, true, 0x03, false, false},
		{"signed overflow positive", 0x7F, 0x01, false, 0x80, false, true},
		{"signed overflow negative", 0x80, 0xFF, false, 0x7F, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newTestCPU()
			c.PC = 0x0200
			c.A = tc.a
			c.SetFlag(FlagCarry, tc.carryIn)
			load(m, 0x0200, 0x69, tc.op) // ADC #op

			step(c, m)

			if c.A != tc.wantA {
				t.Errorf("A = 0x%02X, want 0x%02X", c.A, tc.wantA)
			}
			if c.GetFlag(FlagCarry) != tc.wantCarry {
				t.Errorf("carry = %v, want %v", c.GetFlag(FlagCarry), tc.wantCarry)
			}
			if c.GetFlag(FlagOverflow) != tc.wantOflow {
				t.Errorf("overflow = %v, want %v", c.GetFlag(FlagOverflow), tc.wantOflow)
			}
		})
	}
}

func TestSBC(t *testing.T) {
	cases := []struct {
		name      string
		a, op     uint8
		carryIn   bool // carry set means "no borrow"
		wantA     uint8
		wantCarry bool
	}{
		{"no borrow", 0x10, 0x01, true, 0x0F, true},
		{"with borrow", 0x10, 0x01, false, 0x0E, true},
		{"underflow borrows", 0x00, 0x01, true, 0xFF, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newTestCPU()
			c.PC = 0x0200
			c.A = tc.a
			c.SetFlag(FlagCarry, tc.carryIn)
			load(m, 0x0200, 0xE9, tc.op) // SBC #op

			step(c, m)

			if c.A != tc.wantA {
				t.Errorf("A = 0x%02X, want 0x%02X", c.A, tc.wantA)
			}
			if c.GetFlag(FlagCarry) != tc.wantCarry {
				t.Errorf("carry = %v, want %v", c.GetFlag(FlagCarry), tc.wantCarry)
			}
		})
	}
}

func TestCMPSetsCarryOnGreaterOrEqual(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.A = 0x10
	load(m, 0x0200, 0xC9, 0x10, 0xC9, 0x20) // CMP #$10 ; CMP #$20

	step(c, m) // equal
	if !c.GetFlag(FlagCarry) || !c.GetFlag(FlagZero) {
		t.Errorf("CMP equal: carry=%v zero=%v, want both true", c.GetFlag(FlagCarry), c.GetFlag(FlagZero))
	}

	step(c, m) // 0x10 < 0x20
	if c.GetFlag(FlagCarry) {
		t.Errorf("CMP with A < operand must clear carry")
	}
}

func TestCMPDoesNotModifyAccumulator(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.A = 0x50
	load(m, 0x0200, 0xC9, 0x10)

	step(c, m)

	if c.A != 0x50 {
		t.Errorf("A = 0x%02X, CMP must not store a result", c.A)
	}
}

func TestCPXAndCPY(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.X, c.Y = 0x05, 0x05
	load(m, 0x0200, 0xE0, 0x05, 0xC0, 0x05)

	step(c, m) // CPX
	if !c.GetFlag(FlagZero) {
		t.Errorf("CPX equal should set Z")
	}
	step(c, m) // CPY
	if !c.GetFlag(FlagZero) {
		t.Errorf("CPY equal should set Z")
	}
}
