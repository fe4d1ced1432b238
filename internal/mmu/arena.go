// Package mmu provides the memory of the Game Boy: an arena of
// memory blocks, the components that expose them, and the 64kB bus
// the components are plugged into.
//
// Bus cells never point into a block directly. They hold the
// BlockID of the block and an offset into it, so that releasing a
// block can never leave a cell dangling: a cell referring to a
// released block simply reads as unmapped.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// MaxBlockSize is the largest block the arena will allocate.
const MaxBlockSize = 0x10000

// BlockID identifies a block of memory inside an Arena. The zero
// BlockID never refers to a block.
type BlockID uint32

// Arena owns every block of memory of a machine. IDs are never
// reused, so a released block stays released.
type Arena struct {
	blocks [][]uint8
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{
		blocks: make([][]uint8, 1, 16), // index 0 is reserved
	}
}

// Block returns the memory behind id, or nil if id refers to no
// block or to a block that has been released.
func (a *Arena) Block(id BlockID) []uint8 {
	if id == 0 || int(id) >= len(a.blocks) {
		return nil
	}
	return a.blocks[id]
}

func (a *Arena) alloc(size int) (BlockID, error) {
	if size > MaxBlockSize {
		return 0, fmt.Errorf("mmu: block of %d bytes: %w", size, types.ErrOutOfMemory)
	}
	a.blocks = append(a.blocks, make([]uint8, size))
	return BlockID(len(a.blocks) - 1), nil
}

// NewComponent creates a component backed by a new zeroed block of
// size bytes. A size of 0 creates a component without memory, which
// can later receive memory through Share.
func (a *Arena) NewComponent(size int) (*Component, error) {
	if size < 0 {
		return nil, fmt.Errorf("mmu: negative size %d: %w", size, types.ErrBadParameter)
	}
	c := &Component{arena: a}
	if size == 0 {
		return c, nil
	}

	id, err := a.alloc(size)
	if err != nil {
		return nil, err
	}
	c.block = id
	c.owner = true
	return c, nil
}

// Share makes dst refer to the memory of src. dst does not take
// ownership of the memory, so freeing dst never releases it. The
// range of dst is reset, and dst must not be plugged.
func (a *Arena) Share(dst, src *Component) error {
	if dst == nil || src == nil {
		return fmt.Errorf("mmu: share: nil component: %w", types.ErrBadParameter)
	}
	if dst.plugged {
		return fmt.Errorf("mmu: share into %s: %w", dst, types.ErrBadParameter)
	}
	if a.Block(src.block) == nil {
		return fmt.Errorf("mmu: share: source has no memory: %w", types.ErrBadParameter)
	}

	dst.arena = a
	dst.block = src.block
	dst.owner = false
	dst.reset()
	return nil
}

// Free releases the memory of c if c owns it, and resets its range.
// Freeing a component that shares memory, or one that was already
// freed, does nothing.
func (a *Arena) Free(c *Component) {
	if c == nil || !c.owner {
		return
	}
	if int(c.block) < len(a.blocks) {
		a.blocks[c.block] = nil
	}
	c.block = 0
	c.owner = false
	c.reset()
}
