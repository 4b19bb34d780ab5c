// Package cabinet implements the Space Invaders arcade-cabinet driver: a
// flat 64 KiB memory, an *i8080.CPU* stepped against it, the two
// mid-frame/end-frame video-beam interrupts, IN/OUT port dispatch for the
// bit-shift hardware and input latches, and VRAM-to-RGB transcoding.
package cabinet

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/student/spaceinvaders/i8080"
)

const (
	cyclesPerFrame     = 33333
	halfCyclesPerFrame = 16666
)

// Memory is the cabinet's flat, unprotected 64 KiB address space.
type Memory [65536]byte

func (m *Memory) ReadByte(addr uint16) byte     { return m[addr] }
func (m *Memory) WriteByte(addr uint16, v byte) { m[addr] = v }

// Cabinet owns the memory and CPU for the lifetime of a running game and
// drives both against each other one frame at a time.
type Cabinet struct {
	Memory Memory
	CPU    *i8080.CPU

	NextInterrupt uint8 // 1 or 2, alternating each half-frame
	InPort1       byte
	InPort2       byte

	Shift0      byte
	Shift1      byte
	ShiftOffset byte

	// halfFrameCycles is kept separate from CPU.Cycles (REDESIGN: the
	// reference reuses the CPU's own cycle counter as a modulo-half-frame
	// accumulator, which conflates total elapsed cycles with cycles since
	// the last video-beam interrupt). CPU.Cycles stays a true monotonic
	// count; this field mirrors exactly the bookkeeping the reference did
	// to it, so scheduling is bit-identical.
	halfFrameCycles int

	screenBuffer [256][224][3]byte
}

// New returns a Cabinet with a zeroed 64 KiB memory, bit 3 of input port 1
// permanently latched high (per the cabinet wiring), and next_interrupt
// starting at 1 (mid-frame first).
func New() *Cabinet {
	c := &Cabinet{
		NextInterrupt: 1,
		InPort1:       0x08,
	}
	c.CPU = i8080.New(&c.Memory)
	return c
}

// LoadROM reads all of r into memory starting at offset.
func (c *Cabinet) LoadROM(r io.Reader, offset uint16) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading ROM data")
	}
	if int(offset)+len(data) > len(c.Memory) {
		return errors.Errorf("ROM of %d bytes at offset %#04x overflows memory", len(data), offset)
	}
	copy(c.Memory[offset:], data)
	return nil
}

var invadersROMSet = []struct {
	name   string
	offset uint16
}{
	{"invaders.h", 0x0000},
	{"invaders.g", 0x0800},
	{"invaders.f", 0x1000},
	{"invaders.e", 0x1800},
}

// LoadInvadersROMSet loads the four standard Space Invaders ROM binaries
// from dir at their fixed memory offsets.
func (c *Cabinet) LoadInvadersROMSet(dir string) error {
	for _, rom := range invadersROMSet {
		path := filepath.Join(dir, rom.name)
		if err := c.loadROMFile(path, rom.offset); err != nil {
			return errors.Wrapf(err, "loading %s at offset %#04x", path, rom.offset)
		}
	}
	return nil
}

func (c *Cabinet) loadROMFile(path string, offset uint16) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.LoadROM(f, offset)
}

// UpdateState runs exactly one frame's worth of emulation: steps the CPU
// until cyclesPerFrame T-states have elapsed, intercepting IN/OUT opcodes
// the CPU itself leaves unexecuted and injecting RST 1 / RST 2 at each
// half-frame boundary when interrupts are enabled.
func (c *Cabinet) UpdateState() {
	var cycleCount uint64
	for cycleCount <= cyclesPerFrame {
		pre := c.CPU.Cycles
		c.CPU.Step()
		delta := c.CPU.Cycles - pre
		cycleCount += delta
		c.halfFrameCycles += int(delta)

		switch c.Memory.ReadByte(c.CPU.PC) {
		case 0xDB: // IN d8 — the CPU's step charged the cycle cost but left PC here
			port := c.Memory.ReadByte(c.CPU.PC + 1)
			c.CPU.A = c.in(port)
			c.CPU.PC += 2
		case 0xD3: // OUT d8, same deal
			port := c.Memory.ReadByte(c.CPU.PC + 1)
			c.out(port, c.CPU.A)
			c.CPU.PC += 2
		}

		if c.halfFrameCycles >= halfCyclesPerFrame {
			if c.CPU.IE {
				c.CPU.IE = false
				c.CPU.RST(c.NextInterrupt)
				c.CPU.Cycles += 11
				c.halfFrameCycles += 11
			}
			c.halfFrameCycles -= halfCyclesPerFrame
			if c.NextInterrupt == 2 {
				c.NextInterrupt = 1
			} else {
				c.NextInterrupt = 2
			}
		}
	}
}
