// Package cartridge provides the ROM only cartridge of the
// Game Boy. The cartridge holds the 32kB game ROM, mapped over
// 0x0000-0x7FFF.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Cartridge is a game cartridge without a memory bank
// controller. Its ROM is read-only from the bus.
type Cartridge struct {
	arena       *mmu.Arena
	rom         *mmu.Component
	header      Header
	fingerprint uint64
}

// New creates a cartridge from a ROM image. Only the first two
// banks of the image are used, and the cartridge type must be
// ROM only.
func New(arena *mmu.Arena, image []byte) (*Cartridge, error) {
	if arena == nil {
		return nil, fmt.Errorf("cartridge: nil arena: %w", types.ErrBadParameter)
	}
	size := types.CartridgeROM.Size()
	if len(image) < size {
		return nil, fmt.Errorf("cartridge: image of %d bytes, want at least %d: %w", len(image), size, types.ErrIO)
	}
	header, err := parseHeader(image)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %v: %w", err, types.ErrIO)
	}
	if header.CartridgeType != ROM {
		return nil, fmt.Errorf("cartridge: unsupported cartridge type %s: %w", header.CartridgeType, types.ErrIO)
	}

	rom, err := arena.NewComponent(size)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}
	copy(rom.Bytes(), image)
	rom.ReadOnly = true

	return &Cartridge{
		arena:       arena,
		rom:         rom,
		header:      header,
		fingerprint: xxhash.Sum64(image[:size]),
	}, nil
}

// FromFile creates a cartridge from the ROM image in filename,
// which may be compressed.
func FromFile(arena *mmu.Arena, filename string) (*Cartridge, error) {
	image, err := utils.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %v: %w", err, types.ErrIO)
	}
	return New(arena, image)
}

// Header returns the parsed header of the cartridge.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title of the cartridge.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Fingerprint returns the xxhash of the ROM.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}

// Component returns the ROM component.
func (c *Cartridge) Component() *mmu.Component {
	return c.rom
}

// Plug maps the ROM over 0x0000-0x7FFF, replacing anything
// mapped there, such as the boot ROM.
func (c *Cartridge) Plug(bus *mmu.Bus) error {
	if bus == nil {
		return fmt.Errorf("cartridge: nil bus: %w", types.ErrBadParameter)
	}
	return bus.ForcedPlug(c.rom, types.CartridgeROM.Start, types.CartridgeROM.End, 0)
}

// Free releases the ROM. The cartridge must be unplugged first.
func (c *Cartridge) Free() {
	c.arena.Free(c.rom)
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s (%016x)", c.header.String(), c.fingerprint)
}
