package cpu

import "testing"

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory()
	m.Write(0x1234, 0xAB)
	if got := m.Read(0x1234); got != 0xAB {
		t.Errorf("Read = 0x%02X, want 0xAB", got)
	}
}

func TestMemoryReadWriteWordIsLittleEndian(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0x2000, 0xBEEF)

	if got := m.Read(0x2000); got != 0xEF {
		t.Errorf("low byte = 0x%02X, want 0xEF", got)
	}
	if got := m.Read(0x2001); got != 0xBE {
		t.Errorf("high byte = 0x%02X, want 0xBE", got)
	}
	if got := m.ReadWord(0x2000); got != 0xBEEF {
		t.Errorf("ReadWord = 0x%04X, want 0xBEEF", got)
	}
}

func TestMemoryInitializeClearsAllBytes(t *testing.T) {
	m := NewMemory()
	m.Write(0x0000, 0xFF)
	m.Write(0xFFFF, 0xFF)

	m.Initialize()

	if m.Read(0x0000) != 0 || m.Read(0xFFFF) != 0 {
		t.Errorf("Initialize did not clear memory")
	}
}
