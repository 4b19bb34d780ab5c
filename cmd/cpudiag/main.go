// Command cpudiag runs a standard CP/M-hosted 8080 test ROM (TST8080,
// CPUTEST, 8080PRE, 8080EXM) against the i8080 interpreter, providing just
// enough of BDOS's console output calls for those ROMs to print their
// verdict.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/student/spaceinvaders/i8080"
)

var flagTrace = flag.Bool("trace", false, "print a disassembly trace of every executed instruction")

type memory [65536]byte

func (m *memory) ReadByte(addr uint16) byte     { return m[addr] }
func (m *memory) WriteByte(addr uint16, v byte) { m[addr] = v }

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cpudiag [-trace] <path.com>")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("unable to open %v\n%v\n", flag.Arg(0), err)
	}

	mem := &memory{}
	copy(mem[0x100:], data)

	// CP/M warm boot: a RET at 0x0005 so BDOS "calls" return immediately
	// once we've handled them below.
	mem.WriteByte(0x0005, 0xC9)

	cpu := i8080.New(mem)
	cpu.PC = 0x0100

	for {
		if *flagTrace {
			text, _ := i8080.Disassemble(mem, cpu.PC)
			fmt.Printf("%04x: %s\n", cpu.PC, text)
		}

		if cpu.PC == 0x0005 {
			handleBDOSCall(cpu, mem)
		}

		cpu.Step()

		if cpu.PC == 0x0000 {
			break
		}
	}
}

func handleBDOSCall(cpu *i8080.CPU, mem *memory) {
	switch cpu.C {
	case 9:
		addr := uint16(cpu.D)<<8 | uint16(cpu.E)
		for {
			ch := mem.ReadByte(addr)
			if ch == '$' {
				break
			}
			fmt.Print(string(rune(ch)))
			addr++
		}
	case 2:
		fmt.Print(string(rune(cpu.E)))
	}
}
