// Package timer provides an implementation of the Game Boy
// timer. A free running 16-bit counter is advanced every
// machine cycle, and TIMA is incremented on every falling
// edge of the counter bit selected by TAC.
package timer

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Increment is the number of counter ticks per machine cycle.
const Increment = 4

// tapBits maps the clock select bits of TAC to the counter
// bit they tap.
//
//	00 = bit 9
//	01 = bit 3
//	10 = bit 5
//	11 = bit 7
var tapBits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller is a timer controller. It owns the internal
// counter and reaches DIV, TIMA, TMA and TAC through the
// bus of the CPU it is attached to.
type Controller struct {
	counter uint16
	state   bool

	cpu *cpu.CPU
}

// NewController returns a new timer controller attached to c.
func NewController(c *cpu.CPU) (*Controller, error) {
	if c == nil || c.Bus() == nil {
		return nil, fmt.Errorf("timer: no cpu: %w", types.ErrBadParameter)
	}
	return &Controller{cpu: c}, nil
}

// Counter returns the internal counter. DIV holds its high byte.
func (t *Controller) Counter() uint16 {
	return t.counter
}

// SetCounter sets the internal counter without touching the
// bus.
func (t *Controller) SetCounter(v uint16) {
	t.counter = v
}

// State returns true if the timer is enabled and the counter
// bit selected by TAC is set.
func (t *Controller) State() bool {
	tac := t.cpu.Bus().Read(types.TAC)
	if !bits.Test(tac, 2) {
		return false
	}
	return t.counter&tapBits[tac&0b11] != 0
}

// Cycle advances the counter by one machine cycle, mirrors
// its high byte into DIV and increments TIMA on a falling
// edge of the selected bit.
func (t *Controller) Cycle() error {
	old := t.State()

	t.counter += Increment
	if err := t.cpu.Bus().Write(types.DIV, bits.MSB8(t.counter)); err != nil {
		return fmt.Errorf("timer: sync DIV: %w", err)
	}

	return t.checkEdge(old)
}

// BusListener reacts to a write at address. Writing DIV resets
// the counter, writing TAC may change the selected bit. Both
// can produce a falling edge, and with it an increment of TIMA.
func (t *Controller) BusListener(address uint16) error {
	switch address {
	case types.DIV:
		old := t.State()
		t.counter = 0
		if err := t.cpu.Bus().Write(types.DIV, 0); err != nil {
			return fmt.Errorf("timer: reset DIV: %w", err)
		}
		return t.checkEdge(old)
	case types.TAC:
		// TAC has already been overwritten, compare against the
		// state seen before the write
		return t.checkEdge(t.state)
	}
	return nil
}

// Listen implements the machine's bus listener contract.
func (t *Controller) Listen(address uint16) error {
	return t.BusListener(address)
}

func (t *Controller) checkEdge(old bool) error {
	t.state = t.State()
	if !old || t.state {
		return nil
	}

	bus := t.cpu.Bus()
	tima := bus.Read(types.TIMA)
	if tima == 0xFF {
		t.cpu.RequestInterrupt(cpu.Timer)
		tima = bus.Read(types.TMA)
	} else {
		tima++
	}
	if err := bus.Write(types.TIMA, tima); err != nil {
		return fmt.Errorf("timer: write TIMA: %w", err)
	}
	return nil
}

func (t *Controller) String() string {
	return fmt.Sprintf("counter: 0x%04X, TIMA: 0x%02X, TAC: 0x%02X",
		t.counter, t.cpu.Bus().Read(types.TIMA), t.cpu.Bus().Read(types.TAC))
}
