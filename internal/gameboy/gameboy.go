// Package gameboy assembles the core of a Nintendo Game Boy: the
// memory map, the CPU, the timer, the cartridge and the optional
// boot ROM, and drives them one machine cycle at a time.
package gameboy

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/joypad"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Listener reacts to the address written by the CPU during the
// last cycle, or 0 if nothing was written.
type Listener interface {
	Listen(address uint16) error
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(address uint16) error

// Listen calls f(address).
func (f ListenerFunc) Listen(address uint16) error {
	return f(address)
}

// Ticker is advanced once per machine cycle, right after the CPU.
// It is how a display is attached to the core.
type Ticker interface {
	Tick(cycle uint64) error
}

// memoryMap lists the plain memory components owned by the
// GameBoy. Work RAM comes first, echo RAM shares it.
var memoryMap = [...]types.Region{
	types.WorkRAM,
	types.IORegisters,
	types.ExternalRAM,
	types.VideoRAM,
	types.OAM,
	types.Unusable,
}

// GameBoy represents a Game Boy. It contains all the components of
// the Game Boy, and is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	Timer     *timer.Controller
	Cartridge *cartridge.Cartridge
	Serial    *serial.Controller
	Joypad    *joypad.State
	Boot      *boot.ROM

	arena      *mmu.Arena
	bus        *mmu.Bus
	components []*mmu.Component
	echo       *mmu.Component

	listeners []Listener
	external  []Listener
	display   Ticker
	serialOut io.Writer
	bootImage []byte

	log.Logger

	cycles  uint64
	booting bool
}

// NewGameBoy returns a new GameBoy running the ROM only cartridge
// rom. Without a boot ROM, the GameBoy starts in the state the boot
// ROM leaves it in.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	arena := mmu.NewArena()
	g := &GameBoy{
		arena:  arena,
		bus:    mmu.NewBus(arena),
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.assemble(rom); err != nil {
		if cerr := g.Close(); cerr != nil {
			g.Errorf("gameboy: teardown after failed assembly: %v", cerr)
		}
		return nil, err
	}
	return g, nil
}

func (g *GameBoy) assemble(rom []byte) error {
	for _, region := range memoryMap {
		c, err := g.arena.NewComponent(region.Size())
		if err != nil {
			return fmt.Errorf("gameboy: %w", err)
		}
		g.components = append(g.components, c)
		if err := g.bus.Plug(c, region.Start, region.End); err != nil {
			return fmt.Errorf("gameboy: plug 0x%04X-0x%04X: %w", region.Start, region.End, err)
		}
	}

	// echo RAM mirrors the first 0x1E00 bytes of work RAM
	echo, err := g.arena.NewComponent(0)
	if err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	g.echo = echo
	if err := g.arena.Share(echo, g.components[0]); err != nil {
		return fmt.Errorf("gameboy: echo RAM: %w", err)
	}
	if err := g.bus.Plug(echo, types.EchoRAM.Start, types.EchoRAM.End); err != nil {
		return fmt.Errorf("gameboy: echo RAM: %w", err)
	}

	if g.CPU, err = cpu.New(g.bus, cpu.WithLogger(g.Logger)); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}

	if g.Cartridge, err = cartridge.New(g.arena, rom); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	if err := g.Cartridge.Plug(g.bus); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	g.Debugf("gameboy: cartridge %s", g.Cartridge)

	if g.Timer, err = timer.NewController(g.CPU); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	if g.Serial, err = serial.NewController(g.bus, g.serialOut); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	if g.Joypad, err = joypad.New(g.CPU); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}

	if g.bootImage != nil {
		if g.Boot, err = boot.New(g.arena, g.bootImage); err != nil {
			return fmt.Errorf("gameboy: %w", err)
		}
		g.booting = true
		if err := g.Boot.Plug(g.bus); err != nil {
			return fmt.Errorf("gameboy: %w", err)
		}
		g.Debugf("gameboy: boot ROM %s (%s)", g.Boot.Model(), g.Boot.Checksum())
	} else {
		g.skipBoot()
	}

	g.listeners = append([]Listener{g.Timer, ListenerFunc(g.bootListener), g.Serial, g.Joypad}, g.external...)
	return nil
}

// skipBoot sets the registers to the values they hold once the
// DMG boot ROM has run.
func (g *GameBoy) skipBoot() {
	g.CPU.PC = 0x0100
	g.CPU.SP = 0xFFFE
	g.CPU.AF.SetUint16(0x01B0)
	g.CPU.BC.SetUint16(0x0013)
	g.CPU.DE.SetUint16(0x00D8)
	g.CPU.HL.SetUint16(0x014D)
}

// bootListener hands the start of the address space back to the
// cartridge on the first write to BDIS.
func (g *GameBoy) bootListener(address uint16) error {
	if !g.booting || address != types.BDIS {
		return nil
	}
	if err := g.Boot.Disable(g.bus); err != nil {
		return err
	}
	if err := g.Cartridge.Plug(g.bus); err != nil {
		return err
	}
	g.booting = false
	g.Debugf("gameboy: boot ROM disabled at cycle %d", g.cycles)
	return nil
}

// Step runs a single machine cycle. The timer, the CPU and the
// display are advanced, then the address written by the CPU is
// forwarded to every listener.
func (g *GameBoy) Step() error {
	if err := g.Timer.Cycle(); err != nil {
		return fmt.Errorf("gameboy: cycle %d: %w", g.cycles, err)
	}
	if err := g.CPU.Cycle(); err != nil {
		return fmt.Errorf("gameboy: cycle %d: %w", g.cycles, err)
	}
	if g.display != nil {
		if err := g.display.Tick(g.cycles); err != nil {
			return fmt.Errorf("gameboy: cycle %d: display: %w", g.cycles, err)
		}
	}
	g.cycles++

	address := g.CPU.LastWrite()
	for _, l := range g.listeners {
		if err := l.Listen(address); err != nil {
			return fmt.Errorf("gameboy: listener at 0x%04X: %w", address, err)
		}
	}
	return nil
}

// RunUntil steps the GameBoy until its cycle counter reaches
// cycle, stopping at the first error.
func (g *GameBoy) RunUntil(cycle uint64) error {
	for g.cycles < cycle {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RequestInterrupt requests the interrupt i on behalf of a
// collaborator such as a display or a joypad.
func (g *GameBoy) RequestInterrupt(i cpu.Interrupt) {
	g.CPU.RequestInterrupt(i)
}

// Cycles returns the number of machine cycles run so far.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Bus returns the memory bus.
func (g *GameBoy) Bus() *mmu.Bus {
	return g.bus
}

// Booting reports whether the boot ROM is still mapped.
func (g *GameBoy) Booting() bool {
	return g.booting
}

// Close unplugs and frees every component owned by the GameBoy.
// All failures are collected.
func (g *GameBoy) Close() error {
	var result *multierror.Error

	for _, c := range g.components {
		if err := g.bus.Unplug(c); err != nil {
			result = multierror.Append(result, err)
		}
		g.arena.Free(c)
	}
	g.components = nil
	if g.echo != nil {
		if err := g.bus.Unplug(g.echo); err != nil {
			result = multierror.Append(result, err)
		}
		g.echo = nil
	}
	if g.booting {
		if err := g.Boot.Disable(g.bus); err != nil {
			result = multierror.Append(result, err)
		}
		g.booting = false
	}
	if g.CPU != nil {
		if err := g.CPU.Free(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if g.Cartridge != nil {
		if err := g.bus.Unplug(g.Cartridge.Component()); err != nil {
			result = multierror.Append(result, err)
		}
		g.Cartridge.Free()
	}
	return result.ErrorOrNil()
}
