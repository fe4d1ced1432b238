package cpu

// Jump targets are stored minus the instruction length, as the PC
// is advanced by the length once the instruction completes.

// control executes the jump, call, return and miscellaneous
// families.
func control(c *CPU, lu *Instruction) error {
	op := lu.Opcode
	next := c.PC + uint16(lu.Bytes)
	taken := false

	switch lu.Family {
	case JP_N16:
		c.PC = c.readAddrAfterOpcode() - uint16(lu.Bytes)
	case JP_HL:
		c.PC = c.HL.Uint16() - uint16(lu.Bytes)
	case JP_CC_N16:
		if taken = TestCondition(extractCondition(op), c.Flags()); taken {
			c.PC = c.readAddrAfterOpcode() - uint16(lu.Bytes)
		}

	case JR_E8:
		c.PC += uint16(int8(c.readAfterOpcode()))
	case JR_CC_E8:
		if taken = TestCondition(extractCondition(op), c.Flags()); taken {
			c.PC += uint16(int8(c.readAfterOpcode()))
		}

	case CALL_N16:
		if err := c.Push(next); err != nil {
			return err
		}
		c.PC = c.readAddrAfterOpcode() - uint16(lu.Bytes)
	case CALL_CC_N16:
		if taken = TestCondition(extractCondition(op), c.Flags()); taken {
			if err := c.Push(next); err != nil {
				return err
			}
			c.PC = c.readAddrAfterOpcode() - uint16(lu.Bytes)
		}

	case RET:
		c.PC = c.Pop() - uint16(lu.Bytes)
	case RET_CC:
		if taken = TestCondition(extractCondition(op), c.Flags()); taken {
			c.PC = c.Pop() - uint16(lu.Bytes)
		}
	case RETI:
		c.ime = true
		c.PC = c.Pop() - uint16(lu.Bytes)

	case RST_U3:
		if err := c.Push(next); err != nil {
			return err
		}
		c.PC = uint16(extractN3(op))*8 - uint16(lu.Bytes)

	case EDI:
		c.ime = extractIME(op)
	case HALT:
		c.halted = true
	case STOP, NOP:
	}

	if taken {
		c.idle += int(lu.XtraCycles)
	}
	return nil
}
