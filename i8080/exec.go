package i8080

// execute decodes and runs the instruction at opcode op, mirroring the
// reference implementation's giant switch (see
// original_source/i8080-emulator/i8080.c i8080_step) but with the regular
// MOV (01DDDSSS) and ALU (10OOORRR) opcode blocks decoded by bitfield
// instead of being spelled out 64 cases apiece.
func (c *CPU) execute(op byte) {
	switch {
	case op >= 0x40 && op <= 0x7F && op != 0x76:
		c.mov((op>>3)&0x07, op&0x07)
		return
	case op >= 0x80 && op <= 0xBF:
		c.aluOp((op>>3)&0x07, regGet(c, op&0x07))
		return
	}

	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		c.PC++

	case 0x01:
		c.lxi(BC)
	case 0x02:
		c.stax(BC)
	case 0x03:
		c.inx(BC)
	case 0x04:
		c.inr(0)
	case 0x05:
		c.dcr(0)
	case 0x06:
		c.mvi(0)
	case 0x07:
		c.rlc()
	case 0x09:
		c.dad(c.GetPair(BC))
	case 0x0a:
		c.ldax(BC)
	case 0x0b:
		c.dcx(BC)
	case 0x0c:
		c.inr(1)
	case 0x0d:
		c.dcr(1)
	case 0x0e:
		c.mvi(1)
	case 0x0f:
		c.rrc()

	case 0x11:
		c.lxi(DE)
	case 0x12:
		c.stax(DE)
	case 0x13:
		c.inx(DE)
	case 0x14:
		c.inr(2)
	case 0x15:
		c.dcr(2)
	case 0x16:
		c.mvi(2)
	case 0x17:
		c.ral()
	case 0x19:
		c.dad(c.GetPair(DE))
	case 0x1a:
		c.ldax(DE)
	case 0x1b:
		c.dcx(DE)
	case 0x1c:
		c.inr(3)
	case 0x1d:
		c.dcr(3)
	case 0x1e:
		c.mvi(3)
	case 0x1f:
		c.rar()

	case 0x21:
		c.lxi(HL)
	case 0x22:
		c.shld()
	case 0x23:
		c.inx(HL)
	case 0x24:
		c.inr(4)
	case 0x25:
		c.dcr(4)
	case 0x26:
		c.mvi(4)
	case 0x27:
		c.daa()
	case 0x29:
		c.dad(c.GetPair(HL))
	case 0x2a:
		c.lhld()
	case 0x2b:
		c.dcx(HL)
	case 0x2c:
		c.inr(5)
	case 0x2d:
		c.dcr(5)
	case 0x2e:
		c.mvi(5)
	case 0x2f:
		c.A = ^c.A
		c.PC++

	case 0x31:
		c.lxi(SP)
	case 0x32:
		c.sta()
	case 0x33:
		c.inx(SP)
	case 0x34:
		c.inr(6)
	case 0x35:
		c.dcr(6)
	case 0x36:
		c.mvi(6)
	case 0x37:
		c.flags.c = true
		c.PC++
	case 0x39:
		c.dad(c.SP)
	case 0x3a:
		c.lda()
	case 0x3b:
		c.dcx(SP)
	case 0x3c:
		c.inr(7)
	case 0x3d:
		c.dcr(7)
	case 0x3e:
		c.mvi(7)
	case 0x3f:
		c.flags.c = !c.flags.c
		c.PC++

	case 0x76:
		c.Halted = true

	case 0xc0:
		c.condRet(!c.flags.z)
	case 0xc1:
		c.SetPair(BC, c.pop16())
		c.PC++
	case 0xc2:
		c.condJump(!c.flags.z)
	case 0xc3, 0xcb:
		c.jump()
	case 0xc4:
		c.condCall(!c.flags.z)
	case 0xc5:
		c.push16(c.GetPair(BC))
		c.PC++
	case 0xc6:
		c.A = c.addSetFlags(c.A, c.operand1(), false)
		c.PC += 2
	case 0xc7:
		c.RST(0)
	case 0xc8:
		c.condRet(c.flags.z)
	case 0xc9, 0xd9:
		c.ret()
	case 0xca:
		c.condJump(c.flags.z)
	case 0xcc:
		c.condCall(c.flags.z)
	case 0xcd, 0xdd, 0xed, 0xfd:
		c.call()
	case 0xce:
		c.A = c.addSetFlags(c.A, c.operand1(), c.flags.c)
		c.PC += 2
	case 0xcf:
		c.RST(1)

	case 0xd0:
		c.condRet(!c.flags.c)
	case 0xd1:
		c.SetPair(DE, c.pop16())
		c.PC++
	case 0xd2:
		c.condJump(!c.flags.c)
	case 0xd3: // OUT d8 — unimplemented; cabinet handles port writes
	case 0xd4:
		c.condCall(!c.flags.c)
	case 0xd5:
		c.push16(c.GetPair(DE))
		c.PC++
	case 0xd6:
		c.A = c.subSetFlags(c.A, c.operand1(), false)
		c.PC += 2
	case 0xd7:
		c.RST(2)
	case 0xd8:
		c.condRet(c.flags.c)
	case 0xda:
		c.condJump(c.flags.c)
	case 0xdb: // IN d8 — unimplemented; cabinet handles port reads
	case 0xdc:
		c.condCall(c.flags.c)
	case 0xde:
		c.A = c.subSetFlags(c.A, c.operand1(), c.flags.c)
		c.PC += 2
	case 0xdf:
		c.RST(3)

	case 0xe0:
		c.condRet(!c.flags.p)
	case 0xe1:
		c.SetPair(HL, c.pop16())
		c.PC++
	case 0xe2:
		c.condJump(!c.flags.p)
	case 0xe3:
		c.xthl()
	case 0xe4:
		c.condCall(!c.flags.p)
	case 0xe5:
		c.push16(c.GetPair(HL))
		c.PC++
	case 0xe6:
		result := c.A & c.operand1()
		c.flags.c = false
		c.flags.ac = (c.A|c.operand1())&0x08 != 0
		c.setZSP(result)
		c.A = result
		c.PC += 2
	case 0xe7:
		c.RST(4)
	case 0xe8:
		c.condRet(c.flags.p)
	case 0xe9:
		c.PC = c.hl()
	case 0xea:
		c.condJump(c.flags.p)
	case 0xeb:
		c.H, c.L, c.D, c.E = c.D, c.E, c.H, c.L
		c.PC++
	case 0xec:
		c.condCall(c.flags.p)
	case 0xee:
		c.A ^= c.operand1()
		c.flags.c = false
		c.flags.ac = false
		c.setZSP(c.A)
		c.PC += 2
	case 0xef:
		c.RST(5)

	case 0xf0:
		c.condRet(!c.flags.s)
	case 0xf1:
		c.SetPair(PSW, c.pop16())
		c.PC++
	case 0xf2:
		c.condJump(!c.flags.s)
	case 0xf3:
		c.IE = false
		c.PC++
	case 0xf4:
		c.condCall(!c.flags.s)
	case 0xf5:
		c.push16(c.GetPair(PSW))
		c.PC++
	case 0xf6:
		c.A |= c.operand1()
		c.flags.c = false
		c.flags.ac = false
		c.setZSP(c.A)
		c.PC += 2
	case 0xf7:
		c.RST(6)
	case 0xf8:
		c.condRet(c.flags.s)
	case 0xf9:
		c.SP = c.hl()
		c.PC++
	case 0xfa:
		c.condJump(c.flags.s)
	case 0xfb:
		c.IE = true
		c.PC++
	case 0xfc:
		c.condCall(c.flags.s)
	case 0xfe:
		c.subSetFlags(c.A, c.operand1(), false)
		c.PC += 2
	case 0xff:
		c.RST(7)
	}
}

func (c *CPU) mov(dst, src byte) {
	regSet(c, dst, regGet(c, src))
	c.PC++
}

// aluOp applies the ALU block's operation group (decoded from bits 3-5 of
// a 0x80-0xBF opcode) to the already-fetched operand v.
func (c *CPU) aluOp(group byte, v byte) {
	switch group {
	case 0: // ADD
		c.A = c.addSetFlags(c.A, v, false)
	case 1: // ADC
		c.A = c.addSetFlags(c.A, v, c.flags.c)
	case 2: // SUB
		c.A = c.subSetFlags(c.A, v, false)
	case 3: // SBB
		c.A = c.subSetFlags(c.A, v, c.flags.c)
	case 4: // ANA
		result := c.A & v
		c.flags.c = false
		c.flags.ac = (c.A|v)&0x08 != 0
		c.setZSP(result)
		c.A = result
	case 5: // XRA
		c.A ^= v
		c.flags.c = false
		c.flags.ac = false
		c.setZSP(c.A)
	case 6: // ORA
		c.A |= v
		c.flags.c = false
		c.flags.ac = false
		c.setZSP(c.A)
	case 7: // CMP
		c.subSetFlags(c.A, v, false)
	}
	c.PC++
}

// inr/dcr use the stricter carry-out-of-bit-3 rule for AC (see
// SPEC_FULL.md's Open Questions resolution) by routing through
// add/subSetFlags and restoring the untouched carry flag afterward — INR
// and DCR affect S/Z/AC/P but never C.
func (c *CPU) inr(idx byte) {
	savedC := c.flags.c
	result := c.addSetFlags(regGet(c, idx), 1, false)
	c.flags.c = savedC
	regSet(c, idx, result)
	c.PC++
}

func (c *CPU) dcr(idx byte) {
	savedC := c.flags.c
	result := c.subSetFlags(regGet(c, idx), 1, false)
	c.flags.c = savedC
	regSet(c, idx, result)
	c.PC++
}

func (c *CPU) daa() {
	carry := c.flags.c
	var add byte

	lsb := c.A & 0x0F
	msb := c.A >> 4

	if c.flags.ac || lsb > 9 {
		add += 0x06
	}
	if c.flags.c || msb > 9 || (msb >= 9 && lsb > 9) {
		add += 0x60
		carry = true
	}

	c.A = c.addSetFlags(c.A, add, false)
	c.flags.c = carry
	c.PC++
}

func (c *CPU) rlc() {
	hbit := c.A&0x80 != 0
	c.A <<= 1
	if hbit {
		c.A |= 1
	}
	c.flags.c = hbit
	c.PC++
}

func (c *CPU) rrc() {
	lbit := c.A&0x01 != 0
	c.A >>= 1
	if lbit {
		c.A |= 0x80
	}
	c.flags.c = lbit
	c.PC++
}

func (c *CPU) ral() {
	hbit := c.A&0x80 != 0
	carryIn := c.flags.c
	c.A <<= 1
	if carryIn {
		c.A |= 1
	}
	c.flags.c = hbit
	c.PC++
}

func (c *CPU) rar() {
	lbit := c.A&0x01 != 0
	carryIn := c.flags.c
	c.A >>= 1
	if carryIn {
		c.A |= 0x80
	}
	c.flags.c = lbit
	c.PC++
}

func (c *CPU) dad(addend uint16) {
	sum := uint32(c.hl()) + uint32(addend)
	c.H = byte(sum >> 8)
	c.L = byte(sum)
	c.flags.c = sum > 0xFFFF
	c.PC++
}

func (c *CPU) inx(pair Reg16) {
	c.SetPair(pair, c.GetPair(pair)+1)
	c.PC++
}

func (c *CPU) dcx(pair Reg16) {
	c.SetPair(pair, c.GetPair(pair)-1)
	c.PC++
}

func (c *CPU) lxi(pair Reg16) {
	lo, hi := c.operand1(), c.operand2()
	c.SetPair(pair, uint16(hi)<<8|uint16(lo))
	c.PC += 3
}

func (c *CPU) mvi(idx byte) {
	regSet(c, idx, c.operand1())
	c.PC += 2
}

func (c *CPU) stax(pair Reg16) {
	c.WriteByte(c.GetPair(pair), c.A)
	c.PC++
}

func (c *CPU) ldax(pair Reg16) {
	c.A = c.ReadByte(c.GetPair(pair))
	c.PC++
}

func (c *CPU) addr16() uint16 {
	return uint16(c.operand2())<<8 | uint16(c.operand1())
}

func (c *CPU) sta() {
	c.WriteByte(c.addr16(), c.A)
	c.PC += 3
}

func (c *CPU) lda() {
	c.A = c.ReadByte(c.addr16())
	c.PC += 3
}

func (c *CPU) shld() {
	addr := c.addr16()
	c.WriteByte(addr, c.L)
	c.WriteByte(addr+1, c.H)
	c.PC += 3
}

func (c *CPU) lhld() {
	addr := c.addr16()
	c.L = c.ReadByte(addr)
	c.H = c.ReadByte(addr + 1)
	c.PC += 3
}

func (c *CPU) xthl() {
	lo := c.ReadByte(c.SP)
	hi := c.ReadByte(c.SP + 1)
	c.WriteByte(c.SP, c.L)
	c.WriteByte(c.SP+1, c.H)
	c.L, c.H = lo, hi
	c.PC++
}

func (c *CPU) jump() {
	c.PC = c.addr16()
}

func (c *CPU) condJump(cond bool) {
	target := c.addr16()
	c.PC += 3
	if cond {
		c.PC = target
	}
}

func (c *CPU) call() {
	target := c.addr16()
	c.push16(c.PC + 3)
	c.PC = target
}

func (c *CPU) condCall(cond bool) {
	if cond {
		c.Cycles += 6
		c.call()
		return
	}
	c.PC += 3
}

func (c *CPU) ret() {
	c.PC = c.pop16()
}

func (c *CPU) condRet(cond bool) {
	if cond {
		c.Cycles += 6
		c.ret()
		return
	}
	c.PC++
}
