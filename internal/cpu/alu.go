package cpu

import (
	"github.com/thelolagemann/gbcore/internal/alu"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// load8 returns the operand designated by a 3-bit register code,
// reading the byte at HL for RegHLIndirect.
func (c *CPU) load8(code uint8) uint8 {
	if code == RegHLIndirect {
		return c.readAtHL()
	}
	return c.registerGet(code)
}

// store8 stores value into the operand designated by a 3-bit
// register code.
func (c *CPU) store8(code uint8, value uint8) error {
	if code == RegHLIndirect {
		return c.writeAtHL(value)
	}
	c.registerSet(code, value)
	return nil
}

// operandA returns the second operand of an accumulator instruction:
// the immediate byte for the N8 families, else the register (or
// byte at HL) in bits 0-2.
func (c *CPU) operandA(lu *Instruction) uint8 {
	switch lu.Family {
	case ADD_A_N8, SUB_A_N8, AND_A_N8, OR_A_N8, XOR_A_N8, CP_A_N8:
		return c.readAfterOpcode()
	}
	return c.load8(extractReg(lu.Opcode, 0))
}

// arithmetic executes the ALU families.
func arithmetic(c *CPU, lu *Instruction) error {
	op := lu.Opcode
	var err error

	switch lu.Family {
	// ADD, ADC
	case ADD_A_HLR, ADD_A_N8, ADD_A_R8:
		c.alu = alu.Add8(c.A, c.operandA(lu), extractCarry(op) && c.Flags().C())
		c.A = c.alu.Byte()
		return c.applyFlags(addFlags)

	// SUB, SBC
	case SUB_A_HLR, SUB_A_N8, SUB_A_R8:
		c.alu = alu.Sub8(c.A, c.operandA(lu), extractCarry(op) && c.Flags().C())
		c.A = c.alu.Byte()
		return c.applyFlags(subFlags)

	case CP_A_HLR, CP_A_N8, CP_A_R8:
		c.alu = alu.Sub8(c.A, c.operandA(lu), false)
		return c.applyFlags(subFlags)

	case AND_A_HLR, AND_A_N8, AND_A_R8:
		c.alu = alu.And(c.A, c.operandA(lu))
		c.A = c.alu.Byte()
		return c.applyFlags(andFlags)

	case OR_A_HLR, OR_A_N8, OR_A_R8:
		c.alu = alu.Or(c.A, c.operandA(lu))
		c.A = c.alu.Byte()
		return c.applyFlags(orFlags)

	case XOR_A_HLR, XOR_A_N8, XOR_A_R8:
		c.alu = alu.Xor(c.A, c.operandA(lu))
		c.A = c.alu.Byte()
		return c.applyFlags(orFlags)

	case CPL:
		c.A = ^c.A
		return c.applyFlags(cplFlags)

	// INC, DEC
	case INC_HLR, INC_R8:
		r := extractReg(op, 3)
		c.alu = alu.Add8(c.load8(r), 1, false)
		if err = c.applyFlags(incFlags); err != nil {
			return err
		}
		return c.store8(r, c.alu.Byte())

	case DEC_HLR, DEC_R8:
		r := extractReg(op, 3)
		c.alu = alu.Sub8(c.load8(r), 1, false)
		if err = c.applyFlags(decFlags); err != nil {
			return err
		}
		return c.store8(r, c.alu.Byte())

	// 16-bit
	case ADD_HL_R16SP:
		c.alu = alu.Add16High(c.HL.Uint16(), c.pairSPGet(extractPair(op)))
		if err = c.applyFlags(addHLFlags); err != nil {
			return err
		}
		c.HL.SetUint16(c.alu.Value)

	case INC_R16SP:
		p := extractPair(op)
		c.alu = alu.Add16High(c.pairSPGet(p), 1)
		c.pairSPSet(p, c.alu.Value)

	case DEC_R16SP:
		p := extractPair(op)
		c.alu = alu.Add16High(c.pairSPGet(p), 0xFFFF)
		c.pairSPSet(p, c.alu.Value)

	case LD_HLSP_S8:
		offset := uint16(int8(c.readAfterOpcode()))
		c.alu = alu.Add16Low(c.SP, offset)
		if err = c.applyFlags(spFlags); err != nil {
			return err
		}
		if extractHLTarget(op) {
			c.HL.SetUint16(c.alu.Value)
		} else {
			c.SP = c.alu.Value
		}

	// rotations on A
	case ROTCA:
		if c.alu, err = alu.Rotate(c.A, extractDirection(op)); err != nil {
			return err
		}
		c.A = c.alu.Byte()
		return c.applyFlags(rotAFlags)

	case ROTA:
		if c.alu, err = alu.CarryRotate(c.A, extractDirection(op), c.Flags()); err != nil {
			return err
		}
		c.A = c.alu.Byte()
		return c.applyFlags(rotAFlags)

	// prefixed rotations and shifts
	case ROTC_HLR, ROTC_R8:
		r := extractReg(op, 0)
		if c.alu, err = alu.Rotate(c.load8(r), extractDirection(op)); err != nil {
			return err
		}
		return c.storeShifted(r, shiftFlags)

	case ROT_HLR, ROT_R8:
		r := extractReg(op, 0)
		if c.alu, err = alu.CarryRotate(c.load8(r), extractDirection(op), c.Flags()); err != nil {
			return err
		}
		return c.storeShifted(r, shiftFlags)

	case SLA_HLR, SLA_R8:
		r := extractReg(op, 0)
		if c.alu, err = alu.Shift(c.load8(r), bits.Left); err != nil {
			return err
		}
		return c.storeShifted(r, shiftFlags)

	case SRL_HLR, SRL_R8:
		r := extractReg(op, 0)
		if c.alu, err = alu.Shift(c.load8(r), bits.Right); err != nil {
			return err
		}
		return c.storeShifted(r, shiftFlags)

	case SRA_HLR, SRA_R8:
		r := extractReg(op, 0)
		c.alu = alu.ShiftRA(c.load8(r))
		return c.storeShifted(r, shiftFlags)

	case SWAP_HLR, SWAP_R8:
		r := extractReg(op, 0)
		c.alu = alu.Swap(c.load8(r))
		return c.storeShifted(r, swapFlags)

	// single bits
	case BIT_U3_HLR, BIT_U3_R8:
		if bits.Test(c.load8(extractReg(op, 0)), int(extractN3(op))) {
			return c.combineFlags(Clear, Clear, Set, FromCPU)
		}
		return c.combineFlags(Set, Clear, Set, FromCPU)

	case CHG_U3_HLR, CHG_U3_R8:
		r := extractReg(op, 0)
		v := c.load8(r)
		if extractSetBit(op) {
			v = bits.Set(v, int(extractN3(op)))
		} else {
			v = bits.Reset(v, int(extractN3(op)))
		}
		return c.store8(r, v)

	case DAA:
		c.alu = alu.DecimalAdjust(c.A, c.Flags())
		c.A = c.alu.Byte()
		return c.applyFlags(daaFlags)

	// SCF, CCF
	case SCCF:
		carry := !extractComplement(op) || !c.Flags().C()
		c.alu.Flags = alu.NewFlags(false, false, false, carry)
		return c.applyFlags(sccfFlags)
	}

	return nil
}

// storeShifted writes the ALU result back to the operand and
// combines the flags.
func (c *CPU) storeShifted(code uint8, flags [4]FlagSource) error {
	if err := c.applyFlags(flags); err != nil {
		return err
	}
	return c.store8(code, c.alu.Byte())
}
