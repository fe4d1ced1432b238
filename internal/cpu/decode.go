package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Operand fields encoded in opcodes.

// extractReg returns the 3-bit register code at the given shift.
func extractReg(opcode uint8, shift uint8) uint8 {
	return (opcode >> shift) & 0b111
}

// extractPair returns the 2-bit register pair code in bits 4-5.
func extractPair(opcode uint8) uint8 {
	return (opcode >> 4) & 0b11
}

// extractCondition returns the 2-bit condition code in bits 3-4.
func extractCondition(opcode uint8) Condition {
	return Condition((opcode >> 3) & 0b11)
}

// extractN3 returns the 3-bit value in bits 3-5: a bit index, or a
// restart vector number.
func extractN3(opcode uint8) uint8 {
	return (opcode >> 3) & 0b111
}

// extractDirection returns the direction of a rotation, encoded in
// bit 3.
func extractDirection(opcode uint8) bits.Direction {
	if bits.Test(opcode, 3) {
		return bits.Right
	}
	return bits.Left
}

// extractCarry reports whether an ADD or SUB also uses the carry
// (ADC, SBC).
func extractCarry(opcode uint8) bool {
	return bits.Test(opcode, 3)
}

// extractHLIncrement returns the change of HL after LD (HL+)/(HL-).
func extractHLIncrement(opcode uint8) uint16 {
	if bits.Test(opcode, 4) {
		return 0xFFFF
	}
	return 1
}

// extractIME returns the interrupt master enable value set by EI/DI.
func extractIME(opcode uint8) bool {
	return bits.Test(opcode, 3)
}

// extractSetBit reports whether a CB opcode sets (SET) rather than
// resets (RES) its bit.
func extractSetBit(opcode uint8) bool {
	return bits.Test(opcode, 6)
}

// extractHLTarget reports whether LD_HLSP_S8 stores into HL (LD
// HL,SP+e8) rather than SP (ADD SP,e8).
func extractHLTarget(opcode uint8) bool {
	return bits.Test(opcode, 4)
}

// extractComplement reports whether SCCF complements the carry (CCF)
// rather than setting it (SCF).
func extractComplement(opcode uint8) bool {
	return bits.Test(opcode, 3)
}
