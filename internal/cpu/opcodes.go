package cpu

import "fmt"

// Family groups the opcodes that are executed the same way, the
// operands being decoded from the opcode itself.
type Family uint8

// The instruction families. Unknown is the family of every opcode
// the CPU cannot execute.
const (
	Unknown Family = iota

	// arithmetic and logic
	ADD_A_HLR
	ADD_A_N8
	ADD_A_R8
	INC_HLR
	INC_R8
	ADD_HL_R16SP
	INC_R16SP
	SUB_A_HLR
	SUB_A_N8
	SUB_A_R8
	DEC_HLR
	DEC_R8
	DEC_R16SP
	AND_A_HLR
	AND_A_N8
	AND_A_R8
	OR_A_HLR
	OR_A_N8
	OR_A_R8
	XOR_A_HLR
	XOR_A_N8
	XOR_A_R8
	CPL
	CP_A_HLR
	CP_A_N8
	CP_A_R8
	SLA_HLR
	SLA_R8
	SRA_HLR
	SRA_R8
	SRL_HLR
	SRL_R8
	ROTCA
	ROTA
	ROTC_HLR
	ROT_HLR
	ROTC_R8
	ROT_R8
	SWAP_HLR
	SWAP_R8
	BIT_U3_HLR
	BIT_U3_R8
	CHG_U3_HLR
	CHG_U3_R8
	LD_HLSP_S8
	DAA
	SCCF

	// storage
	LD_A_BCR
	LD_A_CR
	LD_A_DER
	LD_A_HLRU
	LD_A_N16R
	LD_A_N8R
	LD_BCR_A
	LD_CR_A
	LD_DER_A
	LD_HLRU_A
	LD_HLR_N8
	LD_HLR_R8
	LD_N16R_A
	LD_N16R_SP
	LD_N8R_A
	LD_R16SP_N16
	LD_R8_HLR
	LD_R8_N8
	LD_R8_R8
	LD_SP_HL
	POP_R16
	PUSH_R16

	// jumps, calls and returns
	JP_CC_N16
	JP_HL
	JP_N16
	JR_CC_E8
	JR_E8
	CALL_CC_N16
	CALL_N16
	RET
	RET_CC
	RST_U3

	// interrupts and miscellaneous
	EDI
	RETI
	HALT
	STOP
	NOP

	familyCount
)

// Instruction holds the metadata of an opcode.
type Instruction struct {
	Opcode uint8
	Name   string
	Family Family
	// Bytes is the length of the instruction, prefix included.
	Bytes uint8
	// Cycles is the number of machine cycles the instruction takes.
	Cycles uint8
	// XtraCycles is added to Cycles when a conditional instruction
	// takes its branch.
	XtraCycles uint8
}

// String implements fmt.Stringer.
func (i Instruction) String() string {
	if i.Name == "" {
		return fmt.Sprintf("0x%02X", i.Opcode)
	}
	return i.Name
}

// Prefix is the opcode introducing the prefixed instruction set.
const Prefix = 0xCB

var (
	// Direct holds the unprefixed instructions, indexed by opcode.
	Direct [256]Instruction
	// Prefixed holds the instructions following the Prefix opcode,
	// indexed by their second byte.
	Prefixed [256]Instruction
)

func define(table *[256]Instruction, opcode uint8, name string, family Family, bytes, cycles, xtra uint8) {
	table[opcode] = Instruction{
		Opcode:     opcode,
		Name:       name,
		Family:     family,
		Bytes:      bytes,
		Cycles:     cycles,
		XtraCycles: xtra,
	}
}

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func init() {
	// unknown opcodes still carry their own value
	for i := 0; i < 256; i++ {
		Direct[i].Opcode = uint8(i)
		Prefixed[i].Opcode = uint8(i)
	}

	defineDirect()
	definePrefixed()
}

func defineDirect() {
	d := &Direct

	define(d, 0x00, "NOP", NOP, 1, 1, 0)
	define(d, 0x08, "LD (a16),SP", LD_N16R_SP, 3, 5, 0)
	define(d, 0x10, "STOP", STOP, 2, 1, 0)
	define(d, 0x18, "JR e8", JR_E8, 2, 3, 0)

	define(d, 0x02, "LD (BC),A", LD_BCR_A, 1, 2, 0)
	define(d, 0x12, "LD (DE),A", LD_DER_A, 1, 2, 0)
	define(d, 0x22, "LD (HL+),A", LD_HLRU_A, 1, 2, 0)
	define(d, 0x32, "LD (HL-),A", LD_HLRU_A, 1, 2, 0)
	define(d, 0x0A, "LD A,(BC)", LD_A_BCR, 1, 2, 0)
	define(d, 0x1A, "LD A,(DE)", LD_A_DER, 1, 2, 0)
	define(d, 0x2A, "LD A,(HL+)", LD_A_HLRU, 1, 2, 0)
	define(d, 0x3A, "LD A,(HL-)", LD_A_HLRU, 1, 2, 0)

	define(d, 0x07, "RLCA", ROTCA, 1, 1, 0)
	define(d, 0x0F, "RRCA", ROTCA, 1, 1, 0)
	define(d, 0x17, "RLA", ROTA, 1, 1, 0)
	define(d, 0x1F, "RRA", ROTA, 1, 1, 0)
	define(d, 0x27, "DAA", DAA, 1, 1, 0)
	define(d, 0x2F, "CPL", CPL, 1, 1, 0)
	define(d, 0x37, "SCF", SCCF, 1, 1, 0)
	define(d, 0x3F, "CCF", SCCF, 1, 1, 0)

	// 16-bit register pairs
	for p := uint8(0); p < 4; p++ {
		rr := pairSPNames[p]
		define(d, 0x01|p<<4, "LD "+rr+",d16", LD_R16SP_N16, 3, 3, 0)
		define(d, 0x03|p<<4, "INC "+rr, INC_R16SP, 1, 2, 0)
		define(d, 0x09|p<<4, "ADD HL,"+rr, ADD_HL_R16SP, 1, 2, 0)
		define(d, 0x0B|p<<4, "DEC "+rr, DEC_R16SP, 1, 2, 0)
		define(d, 0xC1|p<<4, "POP "+pairNames[p], POP_R16, 1, 3, 0)
		define(d, 0xC5|p<<4, "PUSH "+pairNames[p], PUSH_R16, 1, 4, 0)
	}

	// 8-bit increments, decrements and immediate loads
	for r := uint8(0); r < 8; r++ {
		name := registerNames[r]
		if r == RegHLIndirect {
			define(d, 0x04|r<<3, "INC (HL)", INC_HLR, 1, 3, 0)
			define(d, 0x05|r<<3, "DEC (HL)", DEC_HLR, 1, 3, 0)
			define(d, 0x06|r<<3, "LD (HL),d8", LD_HLR_N8, 2, 3, 0)
			continue
		}
		define(d, 0x04|r<<3, "INC "+name, INC_R8, 1, 1, 0)
		define(d, 0x05|r<<3, "DEC "+name, DEC_R8, 1, 1, 0)
		define(d, 0x06|r<<3, "LD "+name+",d8", LD_R8_N8, 2, 2, 0)
	}

	// conditional jumps, calls and returns
	for cc := uint8(0); cc < 4; cc++ {
		cond := conditionNames[cc]
		define(d, 0x20|cc<<3, "JR "+cond+",e8", JR_CC_E8, 2, 2, 1)
		define(d, 0xC0|cc<<3, "RET "+cond, RET_CC, 1, 2, 3)
		define(d, 0xC2|cc<<3, "JP "+cond+",a16", JP_CC_N16, 3, 3, 1)
		define(d, 0xC4|cc<<3, "CALL "+cond+",a16", CALL_CC_N16, 3, 3, 3)
	}

	// 0x40 - 0x7F - LD r, r'
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			op := 0x40 | dst<<3 | src
			name := "LD " + registerNames[dst] + "," + registerNames[src]
			switch {
			case dst == RegHLIndirect && src == RegHLIndirect:
				define(d, op, "HALT", HALT, 1, 1, 0)
			case dst == RegHLIndirect:
				define(d, op, name, LD_HLR_R8, 1, 2, 0)
			case src == RegHLIndirect:
				define(d, op, name, LD_R8_HLR, 1, 2, 0)
			default:
				define(d, op, name, LD_R8_R8, 1, 1, 0)
			}
		}
	}

	// 0x80 - 0xBF - arithmetic and logic on A, 0xC6 - 0xFE with an
	// immediate operand
	arithmetic := [8]struct {
		name          string
		r8, hlr, imm8 Family
	}{
		{"ADD A,", ADD_A_R8, ADD_A_HLR, ADD_A_N8},
		{"ADC A,", ADD_A_R8, ADD_A_HLR, ADD_A_N8},
		{"SUB ", SUB_A_R8, SUB_A_HLR, SUB_A_N8},
		{"SBC A,", SUB_A_R8, SUB_A_HLR, SUB_A_N8},
		{"AND ", AND_A_R8, AND_A_HLR, AND_A_N8},
		{"XOR ", XOR_A_R8, XOR_A_HLR, XOR_A_N8},
		{"OR ", OR_A_R8, OR_A_HLR, OR_A_N8},
		{"CP ", CP_A_R8, CP_A_HLR, CP_A_N8},
	}
	for op, a := range arithmetic {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 | uint8(op)<<3 | src
			if src == RegHLIndirect {
				define(d, opcode, a.name+"(HL)", a.hlr, 1, 2, 0)
			} else {
				define(d, opcode, a.name+registerNames[src], a.r8, 1, 1, 0)
			}
		}
		define(d, 0xC6|uint8(op)<<3, a.name+"d8", a.imm8, 2, 2, 0)
	}

	for n := uint8(0); n < 8; n++ {
		define(d, 0xC7|n<<3, fmt.Sprintf("RST %02XH", n*8), RST_U3, 1, 4, 0)
	}

	define(d, 0xC3, "JP a16", JP_N16, 3, 4, 0)
	define(d, 0xC9, "RET", RET, 1, 4, 0)
	define(d, 0xCD, "CALL a16", CALL_N16, 3, 6, 0)
	define(d, 0xD9, "RETI", RETI, 1, 4, 0)
	define(d, 0xE0, "LDH (a8),A", LD_N8R_A, 2, 3, 0)
	define(d, 0xF0, "LDH A,(a8)", LD_A_N8R, 2, 3, 0)
	define(d, 0xE2, "LD (C),A", LD_CR_A, 1, 2, 0)
	define(d, 0xF2, "LD A,(C)", LD_A_CR, 1, 2, 0)
	define(d, 0xE8, "ADD SP,e8", LD_HLSP_S8, 2, 4, 0)
	define(d, 0xF8, "LD HL,SP+e8", LD_HLSP_S8, 2, 3, 0)
	define(d, 0xE9, "JP HL", JP_HL, 1, 1, 0)
	define(d, 0xEA, "LD (a16),A", LD_N16R_A, 3, 4, 0)
	define(d, 0xFA, "LD A,(a16)", LD_A_N16R, 3, 4, 0)
	define(d, 0xF3, "DI", EDI, 1, 1, 0)
	define(d, 0xFB, "EI", EDI, 1, 1, 0)
	define(d, 0xF9, "LD SP,HL", LD_SP_HL, 1, 2, 0)

	d[Prefix].Name = "PREFIX CB"
}

func definePrefixed() {
	p := &Prefixed

	shifts := [8]struct {
		name    string
		r8, hlr Family
	}{
		{"RLC", ROTC_R8, ROTC_HLR},
		{"RRC", ROTC_R8, ROTC_HLR},
		{"RL", ROT_R8, ROT_HLR},
		{"RR", ROT_R8, ROT_HLR},
		{"SLA", SLA_R8, SLA_HLR},
		{"SRA", SRA_R8, SRA_HLR},
		{"SWAP", SWAP_R8, SWAP_HLR},
		{"SRL", SRL_R8, SRL_HLR},
	}
	for op, s := range shifts {
		for r := uint8(0); r < 8; r++ {
			opcode := uint8(op)<<3 | r
			name := s.name + " " + registerNames[r]
			if r == RegHLIndirect {
				define(p, opcode, name, s.hlr, 2, 4, 0)
			} else {
				define(p, opcode, name, s.r8, 2, 2, 0)
			}
		}
	}

	for n := uint8(0); n < 8; n++ {
		for r := uint8(0); r < 8; r++ {
			operands := fmt.Sprintf(" %d,%s", n, registerNames[r])
			bit, res, set := 0x40|n<<3|r, 0x80|n<<3|r, 0xC0|n<<3|r
			if r == RegHLIndirect {
				define(p, bit, "BIT"+operands, BIT_U3_HLR, 2, 3, 0)
				define(p, res, "RES"+operands, CHG_U3_HLR, 2, 4, 0)
				define(p, set, "SET"+operands, CHG_U3_HLR, 2, 4, 0)
				continue
			}
			define(p, bit, "BIT"+operands, BIT_U3_R8, 2, 2, 0)
			define(p, res, "RES"+operands, CHG_U3_R8, 2, 2, 0)
			define(p, set, "SET"+operands, CHG_U3_R8, 2, 2, 0)
		}
	}
}
