package cpu

import (
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Read returns the byte at address.
func (c *CPU) Read(address uint16) uint8 {
	return c.bus.Read(address)
}

// Read16 returns the little endian word at address.
func (c *CPU) Read16(address uint16) uint16 {
	return c.bus.Read16(address)
}

// Write writes value at address, and records address as the last
// written address of the cycle.
func (c *CPU) Write(address uint16, value uint8) error {
	c.lastWrite = address
	return c.bus.Write(address, value)
}

// Write16 writes value as a little endian word at address, and
// records address as the last written address of the cycle.
func (c *CPU) Write16(address uint16, value uint16) error {
	c.lastWrite = address
	return c.bus.Write16(address, value)
}

// Push pushes value onto the stack. SP is only decremented when it
// is at least 2.
func (c *CPU) Push(value uint16) error {
	if c.SP >= 2 {
		c.SP -= 2
	}
	return c.Write16(c.SP, value)
}

// Pop pops a word from the stack.
func (c *CPU) Pop() uint16 {
	v := c.Read16(c.SP)
	c.SP += 2
	return v
}

func (c *CPU) readAfterOpcode() uint8 {
	return c.Read(c.PC + 1)
}

func (c *CPU) readAddrAfterOpcode() uint16 {
	return c.Read16(c.PC + 1)
}

func (c *CPU) readAtHL() uint8 {
	return c.Read(c.HL.Uint16())
}

func (c *CPU) writeAtHL(value uint8) error {
	return c.Write(c.HL.Uint16(), value)
}

// highAddress returns the address of an LDH operand, relative to
// the start of the I/O registers.
func highAddress(offset uint8) uint16 {
	return bits.Merge8(offset, 0xFF)
}

// storage executes the load, store and stack families.
func storage(c *CPU, lu *Instruction) error {
	op := lu.Opcode

	switch lu.Family {
	case LD_A_BCR:
		c.A = c.Read(c.BC.Uint16())
	case LD_A_DER:
		c.A = c.Read(c.DE.Uint16())
	case LD_A_CR:
		c.A = c.Read(highAddress(c.C))
	case LD_A_N8R:
		c.A = c.Read(highAddress(c.readAfterOpcode()))
	case LD_A_N16R:
		c.A = c.Read(c.readAddrAfterOpcode())
	case LD_A_HLRU:
		c.A = c.readAtHL()
		c.HL.SetUint16(c.HL.Uint16() + extractHLIncrement(op))

	case LD_BCR_A:
		return c.Write(c.BC.Uint16(), c.A)
	case LD_DER_A:
		return c.Write(c.DE.Uint16(), c.A)
	case LD_CR_A:
		return c.Write(highAddress(c.C), c.A)
	case LD_N8R_A:
		return c.Write(highAddress(c.readAfterOpcode()), c.A)
	case LD_N16R_A:
		return c.Write(c.readAddrAfterOpcode(), c.A)
	case LD_N16R_SP:
		return c.Write16(c.readAddrAfterOpcode(), c.SP)
	case LD_HLRU_A:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + extractHLIncrement(op))
		return c.Write(hl, c.A)
	case LD_HLR_N8:
		return c.writeAtHL(c.readAfterOpcode())
	case LD_HLR_R8:
		return c.writeAtHL(c.registerGet(extractReg(op, 0)))

	case LD_R16SP_N16:
		c.pairSPSet(extractPair(op), c.readAddrAfterOpcode())
	case LD_R8_HLR:
		c.registerSet(extractReg(op, 3), c.readAtHL())
	case LD_R8_N8:
		c.registerSet(extractReg(op, 3), c.readAfterOpcode())
	case LD_R8_R8:
		c.registerSet(extractReg(op, 3), c.registerGet(extractReg(op, 0)))
	case LD_SP_HL:
		c.SP = c.HL.Uint16()

	case POP_R16:
		c.pair(extractPair(op)).SetUint16(c.Pop())
	case PUSH_R16:
		return c.Push(c.pair(extractPair(op)).Uint16())
	}
	return nil
}
