package cpu

import "fmt"

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low register on writes
	mask uint8
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	// AF always reads back with the low nibble of F cleared.
	AF *RegisterPair
}

func (r *Registers) init() {
	r.BC = &RegisterPair{High: &r.B, Low: &r.C, mask: 0xFF}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E, mask: 0xFF}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L, mask: 0xFF}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, mask: 0xF0}
}

// The 3-bit register codes used by opcodes. Code 6 designates the
// memory byte at HL and has no register.
const (
	RegB uint8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// The 2-bit register pair codes used by opcodes. Code 3 means AF
// for PUSH and POP, and SP everywhere else.
const (
	PairBC uint8 = iota
	PairDE
	PairHL
	PairAFSP
)

var (
	pairNames   = [4]string{"BC", "DE", "HL", "AF"}
	pairSPNames = [4]string{"BC", "DE", "HL", "SP"}
)

// register returns the register with the given code, or nil for
// RegHLIndirect.
func (c *CPU) register(code uint8) *Register {
	switch code & 7 {
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	case RegA:
		return &c.A
	}
	return nil
}

func (c *CPU) registerGet(code uint8) uint8 {
	if r := c.register(code); r != nil {
		return *r
	}
	return 0
}

func (c *CPU) registerSet(code uint8, value uint8) {
	if r := c.register(code); r != nil {
		*r = value
	}
}

// pair returns the register pair with the given code, code 3
// being AF.
func (c *CPU) pair(code uint8) *RegisterPair {
	switch code & 3 {
	case PairBC:
		return c.BC
	case PairDE:
		return c.DE
	case PairHL:
		return c.HL
	}
	return c.AF
}

// pairSPGet returns the value of the register pair with the given
// code, code 3 being SP.
func (c *CPU) pairSPGet(code uint8) uint16 {
	if code&3 == PairAFSP {
		return c.SP
	}
	return c.pair(code).Uint16()
}

func (c *CPU) pairSPSet(code uint8, value uint16) {
	if code&3 == PairAFSP {
		c.SP = value
		return
	}
	c.pair(code).SetUint16(value)
}

// String implements fmt.Stringer.
func (r *Registers) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X", r.AF.Uint16(), r.BC.Uint16(), r.DE.Uint16(), r.HL.Uint16())
}
