package mmu

import "fmt"

// Component is a piece of hardware memory that can be plugged into
// the bus over the address range [Start, End].
type Component struct {
	Start, End uint16
	// ReadOnly components drop bus writes. It is applied when the
	// component is plugged.
	ReadOnly bool

	arena   *Arena
	block   BlockID
	owner   bool
	plugged bool
}

// Size returns the size of the memory behind the component, or 0
// if it has none.
func (c *Component) Size() int {
	return len(c.Bytes())
}

// Bytes returns a direct view of the memory behind the component.
func (c *Component) Bytes() []uint8 {
	if c.arena == nil {
		return nil
	}
	return c.arena.Block(c.block)
}

// Block returns the ID of the block behind the component.
func (c *Component) Block() BlockID {
	return c.block
}

// Owner reports whether the component owns its memory.
func (c *Component) Owner() bool {
	return c.owner
}

// Plugged reports whether the component is plugged into a bus.
func (c *Component) Plugged() bool {
	return c.plugged
}

func (c *Component) reset() {
	c.Start, c.End = 0, 0
	c.plugged = false
}

// String implements fmt.Stringer.
func (c *Component) String() string {
	if !c.plugged {
		return fmt.Sprintf("component(%d bytes, unplugged)", c.Size())
	}
	return fmt.Sprintf("component(%d bytes, 0x%04X-0x%04X)", c.Size(), c.Start, c.End)
}
