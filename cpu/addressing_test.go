package cpu

import "testing"

func TestIndexedIndirectWrapsWithinZeroPage(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.X = 0x02
	load(m, 0x0200, 0xA1, 0xFF) // LDA ($FF,X), X=2 -> pointer at $01 wraps in page 0
	m.Write(0x0001, 0x00)
	m.Write(0x0002, 0x40)
	m.Write(0x4000, 0x99)

	step(c, m)

	if c.A != 0x99 {
		t.Errorf("A = 0x%02X, want 0x99", c.A)
	}
}

func TestIndirectIndexedPageCrossChargesExtraCycle(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.Y = 0xFF
	load(m, 0x0200, 0xB1, 0x10) // LDA ($10),Y
	m.Write(0x0010, 0x01)
	m.Write(0x0011, 0x40)
	m.Write(0x4100, 0x77) // 0x4001 + 0xFF crosses into page 0x41

	cycles := step(c, m)

	if c.A != 0x77 {
		t.Errorf("A = 0x%02X, want 0x77", c.A)
	}
	if cycles != 6 {
		t.Errorf("cycles = %d, want 6 (5 base + 1 page-cross)", cycles)
	}
}

func TestAbsoluteYFixedNeverChargesPageCross(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x0200
	c.Y = 0xFF
	c.A = 0x42
	load(m, 0x0200, 0x99, 0xFF, 0x00) // STA $00FF,Y crosses a page

	cycles := step(c, m)

	if cycles != 5 {
		t.Errorf("cycles = %d, want 5 (fixed cost regardless of page cross)", cycles)
	}
}
