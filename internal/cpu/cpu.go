// Package cpu implements the Game Boy CPU: its registers, the
// fetch/decode/execute cycle driven one machine cycle at a time,
// and interrupt handling.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU, in T-cycles.
	ClockSpeed = 4194304
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// alu holds the result of the last ALU operation
	alu alu.Result

	bus *mmu.Bus

	// memory owned by the CPU
	highRAM *mmu.Component
	ifReg   *mmu.Component
	ieReg   *mmu.Component

	ime    bool
	halted bool

	// idle is the number of cycles left before the next instruction
	idle int
	// lastWrite is the address written during the current cycle, 0 if none
	lastWrite uint16

	log log.Logger
}

// Opt is a function that configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used to report unknown instructions.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// New creates a CPU with every register cleared, allocates its high
// RAM and interrupt registers from the arena of bus and plugs them.
func New(bus *mmu.Bus, opts ...Opt) (*CPU, error) {
	if bus == nil {
		return nil, fmt.Errorf("cpu: nil bus: %w", types.ErrBadParameter)
	}
	c := &CPU{
		log: log.NewNullLogger(),
	}
	c.Registers.init()
	for _, opt := range opts {
		opt(c)
	}

	var err error
	arena := bus.Arena()
	if c.highRAM, err = arena.NewComponent(int(types.HighRAM.Size())); err != nil {
		return nil, err
	}
	if c.ifReg, err = arena.NewComponent(1); err != nil {
		return nil, err
	}
	if c.ieReg, err = arena.NewComponent(1); err != nil {
		return nil, err
	}

	if err := c.Plug(bus); err != nil {
		return nil, err
	}
	return c, nil
}

// Plug connects the CPU to bus. High RAM must fit in a free range,
// while IF and IE are mapped over whatever was there.
func (c *CPU) Plug(bus *mmu.Bus) error {
	if bus == nil {
		return fmt.Errorf("cpu: nil bus: %w", types.ErrBadParameter)
	}
	c.bus = bus

	if err := bus.ForcedPlug(c.ifReg, types.IF, types.IF, 0); err != nil {
		return fmt.Errorf("cpu: plug IF: %w", err)
	}
	if err := bus.ForcedPlug(c.ieReg, types.IE, types.IE, 0); err != nil {
		return fmt.Errorf("cpu: plug IE: %w", err)
	}
	if err := bus.Plug(c.highRAM, types.HighRAM.Start, types.HighRAM.End); err != nil {
		return fmt.Errorf("cpu: plug high RAM: %w", err)
	}
	return nil
}

// Free unplugs the memory of the CPU from the bus and releases it.
func (c *CPU) Free() error {
	for _, comp := range []*mmu.Component{c.highRAM, c.ifReg, c.ieReg} {
		if comp == nil {
			continue
		}
		if c.bus != nil {
			if err := c.bus.Unplug(comp); err != nil {
				return err
			}
			c.bus.Arena().Free(comp)
		}
	}
	c.bus = nil
	return nil
}

// Bus returns the bus the CPU is plugged into.
func (c *CPU) Bus() *mmu.Bus {
	return c.bus
}

func byteOf(comp *mmu.Component) *uint8 {
	if comp == nil {
		return nil
	}
	if b := comp.Bytes(); len(b) > 0 {
		return &b[0]
	}
	return nil
}

func (c *CPU) ifPtr() *uint8 { return byteOf(c.ifReg) }

// IF returns the interrupt flag register.
func (c *CPU) IF() uint8 {
	if p := c.ifPtr(); p != nil {
		return *p
	}
	return 0
}

// IE returns the interrupt enable register.
func (c *CPU) IE() uint8 {
	if p := byteOf(c.ieReg); p != nil {
		return *p
	}
	return 0
}

// SetIE sets the interrupt enable register.
func (c *CPU) SetIE(v uint8) {
	if p := byteOf(c.ieReg); p != nil {
		*p = v
	}
}

// IME reports whether the interrupt master enable is set.
func (c *CPU) IME() bool {
	return c.ime
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// LastWrite returns the address the CPU wrote to during the last
// cycle, or 0 if it wrote nothing.
func (c *CPU) LastWrite() uint16 {
	return c.lastWrite
}

// Idle returns the number of cycles left before the CPU executes
// its next instruction.
func (c *CPU) Idle() int {
	return c.idle
}

// Flags returns the F register as flags.
func (c *CPU) Flags() alu.Flags {
	return alu.Flags(c.F)
}

// Cycle runs a single machine cycle. An instruction is executed
// only once the cycles of the previous one have elapsed; in the
// meantime Cycle just counts down.
func (c *CPU) Cycle() error {
	if c.bus == nil {
		return fmt.Errorf("cpu: not plugged: %w", types.ErrBadParameter)
	}
	c.lastWrite = 0

	if c.idle > 0 {
		c.idle--
		return nil
	}

	if c.halted {
		// leave HALT as soon as an interrupt is pending, whatever the IME
		if c.PendingInterrupt() == -1 {
			return nil
		}
		c.halted = false
	}

	return c.step()
}

// step services the pending interrupt if any, otherwise executes
// the instruction at PC.
func (c *CPU) step() error {
	if i := c.PendingInterrupt(); c.ime && i != -1 {
		return c.serviceInterrupt(i)
	}

	opcode := c.Read(c.PC)
	if opcode == Prefix {
		return c.dispatch(&Prefixed[c.readAfterOpcode()])
	}
	return c.dispatch(&Direct[opcode])
}

// dispatch executes lu and advances the PC and the idle counter.
func (c *CPU) dispatch(lu *Instruction) error {
	c.alu = alu.Result{}

	h := handlers[lu.Family]
	if h == nil {
		c.log.Errorf("cpu: unknown instruction %s at 0x%04X", lu, c.PC)
		return fmt.Errorf("cpu: opcode 0x%02X at 0x%04X: %w", lu.Opcode, c.PC, types.ErrUnknownInstruction)
	}
	if err := h(c, lu); err != nil {
		return fmt.Errorf("cpu: %s at 0x%04X: %w", lu, c.PC, err)
	}

	c.PC += uint16(lu.Bytes)
	c.idle += int(lu.Cycles) - 1
	return nil
}

// String implements fmt.Stringer.
func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04X SP=%04X %s F=%s IME=%t", c.PC, c.SP, c.Registers.String(), c.Flags(), c.ime)
}
