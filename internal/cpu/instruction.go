package cpu

// handler executes the instruction lu. It must not advance the PC
// past the instruction; dispatch does that.
type handler func(c *CPU, lu *Instruction) error

// handlers maps every family to the function executing it. Unknown
// has no handler.
var handlers [familyCount]handler

func init() {
	for f := ADD_A_HLR; f <= SCCF; f++ {
		handlers[f] = arithmetic
	}
	for f := LD_A_BCR; f <= PUSH_R16; f++ {
		handlers[f] = storage
	}
	for f := JP_CC_N16; f <= NOP; f++ {
		handlers[f] = control
	}
}
