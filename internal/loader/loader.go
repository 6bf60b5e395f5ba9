// Package loader reads flat binary program images into a cpu.Memory. It
// deliberately has no concept of cartridge headers, mappers or banking:
// the file's bytes become the program, verbatim, at a caller-chosen origin.
package loader

import (
	"fmt"
	"os"

	"github.com/goldmane/gemu/cpu"
)

// LoadFlat reads path and copies its bytes into m starting at org.
func LoadFlat(path string, m *cpu.Memory, org uint16) (length int, err error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("loader: %w", err)
	}
	if int(org)+len(image) > 0x10000 {
		return 0, fmt.Errorf("loader: image of %d bytes at $%04X overruns the 64KiB address space", len(image), org)
	}

	for i, b := range image {
		m.Write(org+uint16(i), b)
	}
	return len(image), nil
}
