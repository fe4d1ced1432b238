// Package serial provides a minimal serial port for the Game Boy.
// No link cable is emulated; every byte the program places in SB
// is forwarded to a writer, which is how test ROMs report their
// results.
package serial

import (
	"fmt"
	"io"

	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

// Controller is the serial controller. It forwards the bytes
// written to types.SB to its output.
type Controller struct {
	bus *mmu.Bus
	out io.Writer
}

// NewController creates a new Controller reading SB from bus and
// forwarding it to out. A nil out discards everything.
func NewController(bus *mmu.Bus, out io.Writer) (*Controller, error) {
	if bus == nil {
		return nil, fmt.Errorf("serial: nil bus: %w", types.ErrBadParameter)
	}
	if out == nil {
		out = io.Discard
	}
	return &Controller{bus: bus, out: out}, nil
}

// Listen forwards the content of SB to the output when address
// is SB.
func (c *Controller) Listen(address uint16) error {
	if address != types.SB {
		return nil
	}
	if _, err := c.out.Write([]byte{c.bus.Read(types.SB)}); err != nil {
		return fmt.Errorf("serial: %w", err)
	}
	return nil
}
