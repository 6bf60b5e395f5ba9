// Package trace formats per-instruction execution snapshots and diffs a
// captured log against a golden reference, the same technique classic 6502
// test suites use to validate a new core instruction-by-instruction against
// a trusted one.
package trace

import (
	"fmt"
	"strings"

	"github.com/goldmane/gemu/cpu"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line is a snapshot of processor state taken between instructions. It has
// no bearing on cpu.CPU's own state; it exists purely for logging.
type Line struct {
	PC     uint16
	Opcode uint8
	A, X, Y, P, SP uint8
	Cycles uint64
}

// Snapshot captures c's register file and the opcode byte at c.PC.
func Snapshot(c *cpu.CPU, m *cpu.Memory, cycles uint64) Line {
	return Line{
		PC:     c.PC,
		Opcode: m.Read(c.PC),
		A:      c.A,
		X:      c.X,
		Y:      c.Y,
		P:      c.Status(),
		SP:     c.SP,
		Cycles: cycles,
	}
}

// Format reads the opcode byte at c.PC from m and renders one fixed-layout
// trace line.
func Format(c *cpu.CPU, m *cpu.Memory, cycles uint64) string {
	l := Snapshot(c, m, cycles)
	return fmt.Sprintf(
		"OP:%02X PC:%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		l.Opcode, l.PC, l.A, l.X, l.Y, l.P, l.SP, l.Cycles,
	)
}

// Diff compares a captured trace against a golden reference log, line by
// line. It reports equal=true when the logs are identical; otherwise diff
// describes every mismatched line.
func Diff(got, want string) (equal bool, diff string) {
	dmp := diffmatchpatch.New()

	chars1, chars2, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return true, ""
	}

	var report strings.Builder
	lineNo := 0
	for _, d := range diffs {
		segmentLines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			lineNo += len(segmentLines)
		case diffmatchpatch.DiffDelete:
			for _, l := range segmentLines {
				fmt.Fprintf(&report, "line %d: want: %s\n", lineNo+1, l)
				lineNo++
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range segmentLines {
				fmt.Fprintf(&report, "line %d:  got: %s\n", lineNo+1, l)
			}
		}
	}
	return false, report.String()
}
