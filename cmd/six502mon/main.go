// Command six502mon is an interactive single-step monitor: it loads a flat
// binary and steps the core one instruction at a time under raw terminal
// input, printing the next instruction before it runs and the register
// file on request.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/goldmane/gemu/cpu"
	"github.com/goldmane/gemu/disasm"
	"github.com/goldmane/gemu/internal/loader"
)

// singleStepBudget makes each Execute call run exactly one instruction:
// Execute always finishes the instruction it starts, and every documented
// opcode costs at least 2 cycles, so a budget of 1 is spent by the first.
const singleStepBudget = 1

func main() {
	org := flag.Uint64("org", 0x8000, "address to load the binary at")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: six502mon [flags] <binary>")
		os.Exit(2)
	}

	m := cpu.NewMemory()
	c := cpu.New()
	c.Reset(m)

	if _, err := loader.LoadFlat(flag.Arg(0), m, uint16(*org)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	m.WriteWord(0xFFFC, uint16(*org))
	c.PC = uint16(*org)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "six502mon:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	run(c, m, fd, oldState)
}

// run drives the space/r/q keystroke loop. Its output writes explicit
// \r\n, since raw mode disables the usual \n -> \r\n translation; step
// restores the terminal before reporting a panic mid-step, which would
// otherwise leave the shell wedged.
func run(c *cpu.CPU, m *cpu.Memory, fd int, oldState *term.State) {
	printNext(c, m)

	key := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(key); err != nil {
			return
		}

		switch key[0] {
		case ' ':
			if halted := step(c, m, fd, oldState); halted {
				return
			}
			printNext(c, m)
		case 'r':
			printRegisters(c)
		case 'q':
			return
		}
	}
}

// step executes exactly one instruction, recovering an illegal-opcode
// panic into a printed diagnostic rather than crashing the terminal.
func step(c *cpu.CPU, m *cpu.Memory, fd int, oldState *term.State) (halted bool) {
	defer func() {
		if r := recover(); r != nil {
			term.Restore(fd, oldState)
			fmt.Printf("\nsix502mon: halted: %v\n", r)
			halted = true
		}
	}()
	c.Execute(singleStepBudget, m)
	return false
}

func printNext(c *cpu.CPU, m *cpu.Memory) {
	opcode := m.Read(c.PC)
	entry := disasm.Table[opcode]
	operand := make([]byte, 0, entry.Length-1)
	for i := uint8(1); i < entry.Length; i++ {
		operand = append(operand, m.Read(c.PC+uint16(i)))
	}
	fmt.Printf("\r\n$%04X  %s\r\n", c.PC, disasm.Line(opcode, operand))
}

func printRegisters(c *cpu.CPU) {
	fmt.Printf("\r\nA:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X\r\n",
		c.A, c.X, c.Y, c.Status(), c.SP, c.PC)
}
