package i8080

import "fmt"

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

var pairNames = [4]string{"B", "D", "H", "SP"}

var aluMnemonics = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}

// Disassemble returns the mnemonic text for the instruction at pc in mem
// and the instruction's length in bytes (1, 2, or 3), so a caller can
// advance to the next instruction without re-decoding the opcode itself.
//
// This is a from-scratch rewrite of the reference disassembler's giant
// switch (see original_source/i8080-emulator/i8080.c i8080_disassemble):
// it decodes the regular MOV/ALU blocks by bitfield instead of spelling
// out 64 cases apiece, and it does not reproduce that switch's "MOV D.E"
// typos (opcodes 0x53, 0x63, 0x6b, 0x73 used a literal period instead of
// a comma in several reg,reg pairs) or its bare "PUSH"/"POP" mnemonics
// missing their operand.
func Disassemble(mem Bus, pc uint16) (text string, length uint16) {
	op := mem.ReadByte(pc)
	op1 := mem.ReadByte(pc + 1)
	op2 := mem.ReadByte(pc + 2)

	switch {
	case op >= 0x40 && op <= 0x7F && op != 0x76:
		dst, src := regNames[(op>>3)&0x07], regNames[op&0x07]
		return fmt.Sprintf("MOV\t%s,%s", dst, src), 1
	case op >= 0x80 && op <= 0xBF:
		return fmt.Sprintf("%s\t%s", aluMnemonics[(op>>3)&0x07], regNames[op&0x07]), 1
	}

	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		return "NOP", 1
	case 0x76:
		return "HLT", 1

	case 0x01, 0x11, 0x21, 0x31:
		return fmt.Sprintf("LXI\t%s,#$%02x%02x", pairNames[op>>4], op2, op1), 3
	case 0x02, 0x12:
		return fmt.Sprintf("STAX\t%s", pairNames[op>>4]), 1
	case 0x03, 0x13, 0x23, 0x33:
		return fmt.Sprintf("INX\t%s", pairNames[op>>4]), 1
	case 0x04, 0x0c, 0x14, 0x1c, 0x24, 0x2c, 0x34, 0x3c:
		return fmt.Sprintf("INR\t%s", regNames[(op>>3)&0x07]), 1
	case 0x05, 0x0d, 0x15, 0x1d, 0x25, 0x2d, 0x35, 0x3d:
		return fmt.Sprintf("DCR\t%s", regNames[(op>>3)&0x07]), 1
	case 0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e:
		return fmt.Sprintf("MVI\t%s,#$%02x", regNames[(op>>3)&0x07], op1), 2
	case 0x07:
		return "RLC", 1
	case 0x09, 0x19, 0x29, 0x39:
		return fmt.Sprintf("DAD\t%s", pairNames[op>>4]), 1
	case 0x0a, 0x1a:
		return fmt.Sprintf("LDAX\t%s", pairNames[op>>4]), 1
	case 0x0b, 0x1b, 0x2b, 0x3b:
		return fmt.Sprintf("DCX\t%s", pairNames[op>>4]), 1
	case 0x0f:
		return "RRC", 1
	case 0x17:
		return "RAL", 1
	case 0x1f:
		return "RAR", 1
	case 0x22:
		return fmt.Sprintf("SHLD\t$%02x%02x", op2, op1), 3
	case 0x27:
		return "DAA", 1
	case 0x2a:
		return fmt.Sprintf("LHLD\t$%02x%02x", op2, op1), 3
	case 0x2f:
		return "CMA", 1
	case 0x32:
		return fmt.Sprintf("STA\t$%02x%02x", op2, op1), 3
	case 0x37:
		return "STC", 1
	case 0x3a:
		return fmt.Sprintf("LDA\t$%02x%02x", op2, op1), 3
	case 0x3f:
		return "CMC", 1

	case 0xc0:
		return "RNZ", 1
	case 0xc1:
		return "POP\tB", 1
	case 0xc2:
		return fmt.Sprintf("JNZ\t$%02x%02x", op2, op1), 3
	case 0xc3, 0xcb:
		return fmt.Sprintf("JMP\t$%02x%02x", op2, op1), 3
	case 0xc4:
		return fmt.Sprintf("CNZ\t$%02x%02x", op2, op1), 3
	case 0xc5:
		return "PUSH\tB", 1
	case 0xc6:
		return fmt.Sprintf("ADI\t#$%02x", op1), 2
	case 0xc7:
		return "RST\t0", 1
	case 0xc8:
		return "RZ", 1
	case 0xc9, 0xd9:
		return "RET", 1
	case 0xca:
		return fmt.Sprintf("JZ\t$%02x%02x", op2, op1), 3
	case 0xcc:
		return fmt.Sprintf("CZ\t$%02x%02x", op2, op1), 3
	case 0xcd, 0xdd, 0xed, 0xfd:
		return fmt.Sprintf("CALL\t$%02x%02x", op2, op1), 3
	case 0xce:
		return fmt.Sprintf("ACI\t#$%02x", op1), 2
	case 0xcf:
		return "RST\t1", 1

	case 0xd0:
		return "RNC", 1
	case 0xd1:
		return "POP\tD", 1
	case 0xd2:
		return fmt.Sprintf("JNC\t$%02x%02x", op2, op1), 3
	case 0xd3:
		return fmt.Sprintf("OUT\t#$%02x", op1), 2
	case 0xd4:
		return fmt.Sprintf("CNC\t$%02x%02x", op2, op1), 3
	case 0xd5:
		return "PUSH\tD", 1
	case 0xd6:
		return fmt.Sprintf("SUI\t#$%02x", op1), 2
	case 0xd7:
		return "RST\t2", 1
	case 0xd8:
		return "RC", 1
	case 0xda:
		return fmt.Sprintf("JC\t$%02x%02x", op2, op1), 3
	case 0xdb:
		return fmt.Sprintf("IN\t#$%02x", op1), 2
	case 0xdc:
		return fmt.Sprintf("CC\t$%02x%02x", op2, op1), 3
	case 0xde:
		return fmt.Sprintf("SBI\t#$%02x", op1), 2
	case 0xdf:
		return "RST\t3", 1

	case 0xe0:
		return "RPO", 1
	case 0xe1:
		return "POP\tH", 1
	case 0xe2:
		return fmt.Sprintf("JPO\t$%02x%02x", op2, op1), 3
	case 0xe3:
		return "XTHL", 1
	case 0xe4:
		return fmt.Sprintf("CPO\t$%02x%02x", op2, op1), 3
	case 0xe5:
		return "PUSH\tH", 1
	case 0xe6:
		return fmt.Sprintf("ANI\t#$%02x", op1), 2
	case 0xe7:
		return "RST\t4", 1
	case 0xe8:
		return "RPE", 1
	case 0xe9:
		return "PCHL", 1
	case 0xea:
		return fmt.Sprintf("JPE\t$%02x%02x", op2, op1), 3
	case 0xeb:
		return "XCHG", 1
	case 0xec:
		return fmt.Sprintf("CPE\t$%02x%02x", op2, op1), 3
	case 0xee:
		return fmt.Sprintf("XRI\t#$%02x", op1), 2
	case 0xef:
		return "RST\t5", 1

	case 0xf0:
		return "RP", 1
	case 0xf1:
		return "POP\tPSW", 1
	case 0xf2:
		return fmt.Sprintf("JP\t$%02x%02x", op2, op1), 3
	case 0xf3:
		return "DI", 1
	case 0xf4:
		return fmt.Sprintf("CP\t$%02x%02x", op2, op1), 3
	case 0xf5:
		return "PUSH\tPSW", 1
	case 0xf6:
		return fmt.Sprintf("ORI\t#$%02x", op1), 2
	case 0xf7:
		return "RST\t6", 1
	case 0xf8:
		return "RM", 1
	case 0xf9:
		return "SPHL", 1
	case 0xfa:
		return fmt.Sprintf("JM\t$%02x%02x", op2, op1), 3
	case 0xfb:
		return "EI", 1
	case 0xfc:
		return fmt.Sprintf("CM\t$%02x%02x", op2, op1), 3
	case 0xfe:
		return fmt.Sprintf("CPI\t#$%02x", op1), 2
	case 0xff:
		return "RST\t7", 1
	}

	return fmt.Sprintf("DB\t$%02x", op), 1
}
