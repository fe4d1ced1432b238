package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Interrupt is a bit of the IF and IE registers. The lower the bit,
// the higher the priority of the interrupt.
type Interrupt uint8

const (
	// VBlank is requested every time the display controller enters
	// the vertical blanking period (bit 0).
	VBlank Interrupt = iota
	// LCDStat is requested by the display controller status when
	// certain conditions are met (bit 1).
	LCDStat
	// Timer is requested when the timer counter overflows (bit 2).
	Timer
	// Serial is requested when a serial transfer completes (bit 3).
	Serial
	// Joypad is requested when a button is pressed (bit 4).
	Joypad
)

const (
	// InterruptVector is the address of the handler of the highest
	// priority interrupt. Handler i lives at InterruptVector+8*i.
	InterruptVector = 0x40
	// InterruptCycles is the number of cycles taken to enter an
	// interrupt handler.
	InterruptCycles = 5
)

var interruptNames = [...]string{"VBlank", "LCDStat", "Timer", "Serial", "Joypad"}

// String implements fmt.Stringer.
func (i Interrupt) String() string {
	if int(i) < len(interruptNames) {
		return interruptNames[i]
	}
	return fmt.Sprintf("Interrupt(%d)", uint8(i))
}

// RequestInterrupt requests the interrupt i, by setting the
// corresponding bit in the IF register.
func (c *CPU) RequestInterrupt(i Interrupt) {
	if p := c.ifPtr(); p != nil {
		*p = bits.Set(*p, int(i))
	}
}

// PendingInterrupt returns the index of the highest priority
// interrupt that is both requested and enabled, or -1 if there is
// none.
func (c *CPU) PendingInterrupt() int {
	pending := c.IF() & c.IE()
	for i := 0; i < 8; i++ {
		if bits.Test(pending, i) {
			return i
		}
	}
	return -1
}

// serviceInterrupt jumps to the handler of interrupt i: the IME is
// cleared, the request acknowledged and the PC pushed.
func (c *CPU) serviceInterrupt(i int) error {
	c.ime = false
	if p := c.ifPtr(); p != nil {
		*p = bits.Reset(*p, i)
	}
	if err := c.Push(c.PC); err != nil {
		return fmt.Errorf("cpu: interrupt %s: %w", Interrupt(i), err)
	}
	c.PC = InterruptVector + 8*uint16(i)
	c.idle += InterruptCycles
	return nil
}

// Condition is a branch condition on the flags.
type Condition uint8

const (
	// CondNZ holds when the zero flag is clear.
	CondNZ Condition = iota
	// CondZ holds when the zero flag is set.
	CondZ
	// CondNC holds when the carry flag is clear.
	CondNC
	// CondC holds when the carry flag is set.
	CondC
)

// TestCondition reports whether cc holds for the given flags. An
// unknown condition never holds.
func TestCondition(cc Condition, flags alu.Flags) bool {
	switch cc {
	case CondNZ:
		return !flags.Z()
	case CondZ:
		return flags.Z()
	case CondNC:
		return !flags.C()
	case CondC:
		return flags.C()
	}
	return false
}
