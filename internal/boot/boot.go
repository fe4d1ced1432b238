// Package boot provides a boot ROM implementation for the Game Boy. Whilst
// this package is not strictly required for the emulator to function, it
// can be used to emulate the boot process of the Game Boy.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// ROM represents a boot ROM for the Game Boy. When the Game Boy first
// powers on, the boot ROM is mapped to memory addresses 0x0000 -
// 0x00FF, over the start of the cartridge.
//
// Once the boot ROM has completed its tasks, it is unmapped from memory
// (by writing to the types.BDIS register), and the cartridge is mapped
// over the boot ROM, thus starting the cartridge execution, and preventing
// the boot ROM from being executed again.
type ROM struct {
	arena     *mmu.Arena
	component *mmu.Component
	checksum  string // the MD5 checksum of the boot rom
}

// New copies a boot ROM image into a new ROM. Only the 256 byte
// boot ROMs of the DMG family are supported. The MD5 checksum of
// the image is stored to identify the model.
func New(arena *mmu.Arena, image []byte) (*ROM, error) {
	if arena == nil {
		return nil, fmt.Errorf("boot: nil arena: %w", types.ErrBadParameter)
	}
	if len(image) != types.BootROM.Size() {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d: %w", len(image), types.ErrIO)
	}

	c, err := arena.NewComponent(len(image))
	if err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	copy(c.Bytes(), image)
	c.ReadOnly = true

	sum := md5.Sum(image)
	return &ROM{
		arena:     arena,
		component: c,
		checksum:  hex.EncodeToString(sum[:]),
	}, nil
}

// FromFile loads a boot ROM from filename.
func FromFile(arena *mmu.Arena, filename string) (*ROM, error) {
	image, err := utils.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("boot: %v: %w", err, types.ErrIO)
	}
	return New(arena, image)
}

// Plug maps the boot ROM over 0x0000-0x00FF, hiding the start of
// the cartridge.
func (b *ROM) Plug(bus *mmu.Bus) error {
	if bus == nil {
		return fmt.Errorf("boot: nil bus: %w", types.ErrBadParameter)
	}
	return bus.ForcedPlug(b.component, types.BootROM.Start, types.BootROM.End, 0)
}

// Disable unmaps and frees the boot ROM. The caller is expected
// to plug the cartridge back over the freed range.
func (b *ROM) Disable(bus *mmu.Bus) error {
	if err := bus.Unplug(b.component); err != nil {
		return fmt.Errorf("boot: %w", err)
	}
	b.arena.Free(b.component)
	return nil
}

// Component returns the boot ROM component.
func (b *ROM) Component() *mmu.Component {
	return b.component
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the checksum of the DMG early boot ROM, only
	// found in very early Japanese units. It flashes the
	// screen on a boot failure instead of hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG-01 boot ROM.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into
	// A rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB sends the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is to SGB what MGB is to DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
