// Command six502run loads a flat binary image into memory and runs it to
// completion, optionally recording or checking a trace log.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goldmane/gemu/cpu"
	"github.com/goldmane/gemu/disasm"
	"github.com/goldmane/gemu/internal/loader"
	"github.com/goldmane/gemu/trace"
)

// stepBudget makes each Execute call below run exactly one instruction:
// Execute always finishes the instruction it starts, and every documented
// opcode costs at least 2 cycles, so a budget of 1 is spent by the first.
// This is the same convention cmd/six502mon uses for its single-step loop.
const stepBudget = 1

func main() {
	org := flag.Uint64("org", 0x8000, "address to load the binary at")
	setResetVector := flag.Bool("set-reset-vector", true, "point the reset vector at -org (Reset does not fetch one from the image)")
	maxCycles := flag.Int64("max-cycles", 1_000_000, "abort after this many total cycles")
	traceOut := flag.String("trace", "", "path to write a trace log to")
	goldenPath := flag.String("golden", "", "golden trace log to diff the run against")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: six502run [flags] <binary>")
		os.Exit(2)
	}

	m := cpu.NewMemory()
	c := cpu.New()
	c.Reset(m)

	length, err := loader.LoadFlat(flag.Arg(0), m, uint16(*org))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("six502run: loaded %d bytes at $%04X\n", length, uint16(*org))

	if *setResetVector {
		m.WriteWord(0xFFFC, uint16(*org))
		c.PC = uint16(*org)
	}

	wantTrace := *traceOut != "" || *goldenPath != ""
	var traceLog strings.Builder
	var totalCycles uint64

	for totalCycles < uint64(*maxCycles) {
		opcode := m.Read(c.PC)
		brkPC := c.PC

		if wantTrace {
			operand := operandBytes(m, c.PC, opcode)
			traceLog.WriteString(trace.Format(c, m, totalCycles))
			traceLog.WriteString("  ")
			traceLog.WriteString(disasm.Line(opcode, operand))
			traceLog.WriteString("\n")
		}

		totalCycles += uint64(c.Execute(stepBudget, m))

		if opcode == 0x00 {
			fmt.Printf("six502run: BRK at $%04X, halting after %d cycles\n", brkPC, totalCycles)
			break
		}
	}

	if *traceOut != "" {
		if err := os.WriteFile(*traceOut, []byte(traceLog.String()), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "six502run: writing trace:", err)
		}
	}

	if *goldenPath != "" {
		golden, err := os.ReadFile(*goldenPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "six502run: reading golden log:", err)
			os.Exit(1)
		}
		if equal, diff := trace.Diff(traceLog.String(), string(golden)); !equal {
			fmt.Fprintln(os.Stderr, "six502run: trace diverged from golden log:")
			fmt.Fprint(os.Stderr, diff)
			os.Exit(1)
		}
		fmt.Println("six502run: trace matches golden log")
	}
}

// operandBytes reads the bytes disasm.Table says follow opcode at pc, for
// disassembly and trace output only.
func operandBytes(m *cpu.Memory, pc uint16, opcode uint8) []byte {
	entry := disasm.Table[opcode]
	n := int(entry.Length) - 1
	if n <= 0 {
		return nil
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = m.Read(pc + 1 + uint16(i))
	}
	return b
}
