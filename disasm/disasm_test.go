package disasm

import "testing"

func TestKnownOpcodeEntries(t *testing.T) {
	cases := []struct {
		opcode   uint8
		mnemonic string
		mode     Mode
		length   uint8
	}{
		{0xA9, "LDA", Immediate, 2},
		{0x6C, "JMP", Indirect, 3},
		{0x0A, "ASL", Accumulator, 1},
		{0xEA, "NOP", Implied, 1},
	}
	for _, tc := range cases {
		e := Table[tc.opcode]
		if e.Mnemonic != tc.mnemonic || e.Mode != tc.mode || e.Length != tc.length {
			t.Errorf("Table[0x%02X] = %+v, want {%s %v %d}", tc.opcode, e, tc.mnemonic, tc.mode, tc.length)
		}
	}
}

func TestUndocumentedOpcodeIsIllegalPlaceholder(t *testing.T) {
	e := Table[0x02]
	if e.Mnemonic != "???" || e.Length != 1 {
		t.Errorf("Table[0x02] = %+v, want the illegal placeholder", e)
	}
}

func TestLineRendersMnemonicAndOperand(t *testing.T) {
	got := Line(0xA9, []byte{0x10})
	want := "LDA #$10"
	if got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}

func TestLineOmitsOperandForImplied(t *testing.T) {
	got := Line(0xEA, nil)
	if got != "NOP" {
		t.Errorf("Line = %q, want %q", got, "NOP")
	}
}

func TestOperandAbsoluteIsBigEndianDisplay(t *testing.T) {
	e := Table[0x4C] // JMP absolute
	got := Operand(e, []byte{0x34, 0x12})
	if got != "$1234" {
		t.Errorf("Operand = %q, want %q", got, "$1234")
	}
}
