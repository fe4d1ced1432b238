package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// cell maps a single bus address to a byte of a block. The zero
// cell is unmapped.
type cell struct {
	block    BlockID
	offset   uint16
	readOnly bool
}

// Bus is the 16-bit address space of the Game Boy. Every address
// maps to at most one byte of memory, and several addresses may
// map to the same byte.
type Bus struct {
	arena *Arena
	cells [0x10000]cell
}

// NewBus returns a bus with every address unmapped, resolving
// memory through arena.
func NewBus(arena *Arena) *Bus {
	return &Bus{arena: arena}
}

// Arena returns the arena the bus resolves memory through.
func (b *Bus) Arena() *Arena {
	return b.arena
}

// Mapped reports whether address maps to a live byte of memory.
func (b *Bus) Mapped(address uint16) bool {
	_, ok := b.resolve(address)
	return ok
}

func (b *Bus) resolve(address uint16) (*uint8, bool) {
	c := b.cells[address]
	mem := b.arena.Block(c.block)
	if int(c.offset) >= len(mem) {
		return nil, false
	}
	return &mem[c.offset], true
}

// Plug maps c over [start, end], starting at the beginning of its
// memory. It fails if any address of the range is already mapped.
// Cells left behind by a freed block count as unmapped.
func (b *Bus) Plug(c *Component, start, end uint16) error {
	if c == nil || c.Size() == 0 {
		return fmt.Errorf("mmu: plug: component has no memory: %w", types.ErrBadParameter)
	}
	for i := int(start); i <= int(end); i++ {
		if b.Mapped(uint16(i)) {
			return fmt.Errorf("mmu: plug 0x%04X-0x%04X: 0x%04X already mapped: %w", start, end, i, types.ErrAddress)
		}
	}
	return b.ForcedPlug(c, start, end, 0)
}

// ForcedPlug maps c over [start, end] regardless of what was
// mapped there before, address start mapping to byte offset of the
// component's memory.
func (b *Bus) ForcedPlug(c *Component, start, end, offset uint16) error {
	if c == nil || c.Size() == 0 {
		return fmt.Errorf("mmu: plug: component has no memory: %w", types.ErrBadParameter)
	}
	if start > end || int(end-start)+int(offset) >= c.Size() {
		return fmt.Errorf("mmu: plug 0x%04X-0x%04X+%d over %d bytes: %w", start, end, offset, c.Size(), types.ErrAddress)
	}

	for i := 0; i <= int(end-start); i++ {
		b.cells[int(start)+i] = cell{block: c.block, offset: offset + uint16(i), readOnly: c.ReadOnly}
	}
	c.Start, c.End = start, end
	c.plugged = true
	return nil
}

// Unplug unmaps the current range of c and resets it. The memory
// of c is left untouched.
func (b *Bus) Unplug(c *Component) error {
	if c == nil {
		return fmt.Errorf("mmu: unplug: nil component: %w", types.ErrBadParameter)
	}
	if c.plugged {
		for i := int(c.Start); i <= int(c.End); i++ {
			b.cells[i] = cell{}
		}
	}
	c.reset()
	return nil
}

// Read returns the byte at address, or 0xFF if it is unmapped.
func (b *Bus) Read(address uint16) uint8 {
	if p, ok := b.resolve(address); ok {
		return *p
	}
	return 0xFF
}

// Write writes value at address. Unlike reads, writes to an
// unmapped address fail. Writes to a read-only mapping are
// dropped.
func (b *Bus) Write(address uint16, value uint8) error {
	p, ok := b.resolve(address)
	if !ok {
		return fmt.Errorf("mmu: write 0x%02X to 0x%04X: %w", value, address, types.ErrAddress)
	}
	if b.cells[address].readOnly {
		return nil
	}
	*p = value
	return nil
}

// Read16 reads a little endian word starting at address.
func (b *Bus) Read16(address uint16) uint16 {
	return bits.Merge8(b.Read(address), b.Read(address+1))
}

// Write16 writes value as a little endian word starting at address.
// Nothing is written if the low half fails. A failing high half
// leaves the low half written.
func (b *Bus) Write16(address uint16, value uint16) error {
	if err := b.Write(address, bits.LSB8(value)); err != nil {
		return err
	}
	return b.Write(address+1, bits.MSB8(value))
}
