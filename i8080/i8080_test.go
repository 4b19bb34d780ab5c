package i8080

import "testing"

// flatMemory is a trivial 64k Bus used only by these unit tests.
type flatMemory [65536]byte

func (m *flatMemory) ReadByte(addr uint16) byte     { return m[addr] }
func (m *flatMemory) WriteByte(addr uint16, v byte) { m[addr] = v }

func newTestCPU() (*CPU, *flatMemory) {
	mem := &flatMemory{}
	return New(mem), mem
}

func TestAddSetFlagsCarryAndZero(t *testing.T) {
	c, _ := newTestCPU()

	result := c.addSetFlags(0xFF, 0x01, false)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{result, byte(0x00)},
		{c.flags.c, true},
		{c.flags.z, true},
		{c.flags.s, false},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestAddSetFlagsAuxCarry(t *testing.T) {
	c, _ := newTestCPU()

	result := c.addSetFlags(0x0F, 0x01, false)

	if result != 0x10 {
		t.Errorf("result: got %#x, want %#x", result, 0x10)
	}
	if !c.flags.ac {
		t.Errorf("AC: got false, want true")
	}
	if c.flags.c {
		t.Errorf("C: got true, want false")
	}
}

func TestSubSetFlagsBorrow(t *testing.T) {
	c, _ := newTestCPU()

	result := c.subSetFlags(0x00, 0x01, false)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{result, byte(0xFF)},
		{c.flags.c, true},
		{c.flags.z, false},
		{c.flags.s, true},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestSetZSPParity(t *testing.T) {
	c, _ := newTestCPU()

	c.setZSP(0x03) // 0b00000011, two set bits: even parity
	if !c.flags.p {
		t.Errorf("parity of 0x03: got false, want true")
	}

	c.setZSP(0x07) // 0b00000111, three set bits: odd parity
	if c.flags.p {
		t.Errorf("parity of 0x07: got true, want false")
	}
}

func TestFlagsPackForcesFixedBits(t *testing.T) {
	c, _ := newTestCPU()
	c.flags.unpack(0x00)

	packed := c.flags.pack()

	if packed&flagBit1Fixed == 0 {
		t.Errorf("bit1: got 0, want 1")
	}
	if packed&0x28 != 0 {
		t.Errorf("bits 3/5: got set, want clear, packed=%#x", packed)
	}
}

func TestPushPopPairRoundtrip(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0x2400
	c.SetPair(BC, 0x1234)

	c.push16(c.GetPair(BC))
	c.SetPair(BC, 0x0000)
	c.SetPair(BC, c.pop16())

	if got := c.GetPair(BC); got != 0x1234 {
		t.Errorf("got %#04x, want %#04x", got, 0x1234)
	}
	if c.SP != 0x2400 {
		t.Errorf("SP not restored: got %#04x, want %#04x", c.SP, 0x2400)
	}
}

func TestInrDoesNotTouchCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.flags.c = true
	c.A = 0xFF

	c.inr(7) // INR A

	if c.A != 0x00 {
		t.Errorf("A: got %#x, want 0x00", c.A)
	}
	if !c.flags.c {
		t.Errorf("C: got false, want true (INR must not touch carry)")
	}
	if !c.flags.z {
		t.Errorf("Z: got false, want true")
	}
}

func TestDcrDoesNotTouchCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.flags.c = false
	c.A = 0x00

	c.dcr(7) // DCR A

	if c.A != 0xFF {
		t.Errorf("A: got %#x, want 0xFF", c.A)
	}
	if c.flags.c {
		t.Errorf("C: got true, want false (DCR must not touch carry)")
	}
}

func TestDaaBcdAdjust(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x9B // invalid BCD, typical DAA textbook example

	c.daa()

	if c.A != 0x01 {
		t.Errorf("A: got %#x, want 0x01", c.A)
	}
	if !c.flags.c {
		t.Errorf("C: got false, want true")
	}
}

func TestStepMovRegToReg(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0000, 0x47) // MOV B,A
	c.A = 0x42

	c.Step()

	if c.B != 0x42 {
		t.Errorf("B: got %#x, want 0x42", c.B)
	}
	if c.PC != 1 {
		t.Errorf("PC: got %d, want 1", c.PC)
	}
	if c.Cycles != 5 {
		t.Errorf("Cycles: got %d, want 5", c.Cycles)
	}
}

func TestStepLxiSp(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0000, 0x31) // LXI SP
	mem.WriteByte(0x0001, 0x00)
	mem.WriteByte(0x0002, 0x24)

	c.Step()

	if c.SP != 0x2400 {
		t.Errorf("SP: got %#04x, want 0x2400", c.SP)
	}
	if c.PC != 3 {
		t.Errorf("PC: got %d, want 3", c.PC)
	}
}

func TestStepJmp(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0000, 0xC3) // JMP 0x1234
	mem.WriteByte(0x0001, 0x34)
	mem.WriteByte(0x0002, 0x12)

	c.Step()

	if c.PC != 0x1234 {
		t.Errorf("PC: got %#04x, want 0x1234", c.PC)
	}
}

func TestStepConditionalCallTakenAddsCycles(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0x2400
	mem.WriteByte(0x0000, 0xCC) // CZ 0x1000
	mem.WriteByte(0x0001, 0x00)
	mem.WriteByte(0x0002, 0x10)
	c.flags.z = true

	c.Step()

	if c.PC != 0x1000 {
		t.Errorf("PC: got %#04x, want 0x1000", c.PC)
	}
	if c.Cycles != 17 {
		t.Errorf("Cycles: got %d, want 17", c.Cycles)
	}
	if c.GetPair(SP) != 0x23FE {
		t.Errorf("SP: got %#04x, want 0x23fe", c.SP)
	}
}

func TestStepConditionalCallNotTaken(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0000, 0xCC) // CZ 0x1000
	c.flags.z = false

	c.Step()

	if c.PC != 3 {
		t.Errorf("PC: got %d, want 3", c.PC)
	}
	if c.Cycles != 11 {
		t.Errorf("Cycles: got %d, want 11", c.Cycles)
	}
}

func TestHltSetsHaltedAndStepsInPlace(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0000, 0x76) // HLT

	c.Step()
	if !c.Halted {
		t.Fatalf("Halted: got false, want true")
	}
	if c.PC != 0 {
		t.Errorf("PC: got %d, want 0 (HLT does not self-advance)", c.PC)
	}

	before := c.Cycles
	c.Step()
	if c.Cycles != before+7 {
		t.Errorf("Cycles: got %d, want %d (halted step still charges HLT cost)", c.Cycles, before+7)
	}
	if c.PC != 0 {
		t.Errorf("PC: got %d, want 0 (halted CPU does not fetch)", c.PC)
	}
}

func TestRstDuringHaltResumesAtVector(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0x2400
	mem.WriteByte(0x0000, 0x76) // HLT
	c.Step()

	c.RST(1) // vector 0x0008

	if c.Halted {
		t.Errorf("Halted: got true, want false after RST")
	}
	if c.PC != 0x0008 {
		t.Errorf("PC: got %#04x, want 0x0008", c.PC)
	}

	before := c.Cycles
	c.Step() // should now fetch and execute the NOP at 0x0008, not spin
	if c.Cycles != before+4 {
		t.Errorf("Cycles: got %d, want %d (NOP cost, not the halted HLT cost)", c.Cycles, before+4)
	}
}

func TestInOutOpcodesLeavePCUntouchedForCaller(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0000, 0xDB) // IN 1
	mem.WriteByte(0x0001, 0x01)

	c.Step()

	if c.PC != 0 {
		t.Errorf("PC: got %d, want 0 (cabinet driver advances past IN/OUT)", c.PC)
	}
	if c.Cycles != 10 {
		t.Errorf("Cycles: got %d, want 10", c.Cycles)
	}

	c, mem = newTestCPU()
	mem.WriteByte(0x0000, 0xD3) // OUT 2
	mem.WriteByte(0x0001, 0x02)

	c.Step()

	if c.PC != 0 {
		t.Errorf("OUT PC: got %d, want 0 (cabinet driver advances past IN/OUT)", c.PC)
	}
	if c.Cycles != 10 {
		t.Errorf("OUT Cycles: got %d, want 10", c.Cycles)
	}
}

func TestDisassembleFixesKnownMovTypo(t *testing.T) {
	mem := &flatMemory{}
	mem.WriteByte(0x00, 0x53) // MOV D,E in the reference disassembler misprinted "MOV D.E"

	text, length := Disassemble(mem, 0x00)

	if text != "MOV\tD,E" {
		t.Errorf("got %q, want %q", text, "MOV\tD,E")
	}
	if length != 1 {
		t.Errorf("length: got %d, want 1", length)
	}
}

func TestScenarioSubBZeroesAccumulator(t *testing.T) {
	c, mem := newTestCPU()
	c.A, c.B = 0x3E, 0x3E
	mem.WriteByte(0x0000, 0x90) // SUB B

	c.Step()

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.A, byte(0x00)},
		{c.flags.z, true},
		{c.flags.c, false},
		{c.flags.ac, true},
		{c.flags.p, true},
		{c.flags.s, false},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestScenarioAdiSetsAuxCarryAndSign(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x2E
	mem.WriteByte(0x0000, 0xC6) // ADI 0x74
	mem.WriteByte(0x0001, 0x74)

	c.Step()

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{c.A, byte(0xA2)},
		{c.flags.s, true},
		{c.flags.z, false},
		{c.flags.ac, true},
		{c.flags.p, false},
		{c.flags.c, false},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestScenarioDadHDoublesHL(t *testing.T) {
	c, mem := newTestCPU()
	c.SetPair(HL, 0x2400)
	mem.WriteByte(0x0000, 0x29) // DAD H

	c.Step()

	if got := c.GetPair(HL); got != 0x4800 {
		t.Errorf("HL: got %#04x, want 0x4800", got)
	}
	if c.flags.c {
		t.Errorf("C: got true, want false")
	}
}

func TestScenarioRetPopsReturnAddress(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0x2400
	mem.WriteByte(0x2400, 0x34)
	mem.WriteByte(0x2401, 0x12)
	mem.WriteByte(0x0000, 0xC9) // RET

	c.Step()

	if c.PC != 0x1234 {
		t.Errorf("PC: got %#04x, want 0x1234", c.PC)
	}
	if c.SP != 0x2402 {
		t.Errorf("SP: got %#04x, want 0x2402", c.SP)
	}
}

func TestScenarioXchgTwiceIsIdentity(t *testing.T) {
	c, mem := newTestCPU()
	c.D, c.E, c.H, c.L = 0x11, 0x22, 0x33, 0x44
	mem.WriteByte(0x0000, 0xEB) // XCHG
	mem.WriteByte(0x0001, 0xEB) // XCHG

	c.Step()
	c.Step()

	if c.D != 0x11 || c.E != 0x22 || c.H != 0x33 || c.L != 0x44 {
		t.Errorf("got D=%#x E=%#x H=%#x L=%#x, want D=0x11 E=0x22 H=0x33 L=0x44", c.D, c.E, c.H, c.L)
	}
}

func TestDisassembleThreeByteOperand(t *testing.T) {
	mem := &flatMemory{}
	mem.WriteByte(0x00, 0x21) // LXI H,#$1234
	mem.WriteByte(0x01, 0x34)
	mem.WriteByte(0x02, 0x12)

	text, length := Disassemble(mem, 0x00)

	if text != "LXI\tH,#$1234" {
		t.Errorf("got %q, want %q", text, "LXI\tH,#$1234")
	}
	if length != 3 {
		t.Errorf("length: got %d, want 3", length)
	}
}
